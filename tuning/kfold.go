package tuning

import (
	"math/rand/v2"
)

// Fold holds train/test row indices for a single cross-validation fold.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold is a seeded shuffled k-fold splitter over row indices.
type KFold struct {
	NSplits int
	Shuffle bool
	Seed    int64
}

// NewKFold creates a new k-fold splitter.
func NewKFold(nSplits int, seed int64) *KFold {
	if nSplits < 2 {
		nSplits = 5 // Default to 5-fold
	}
	return &KFold{
		NSplits: nSplits,
		Shuffle: true,
		Seed:    seed,
	}
}

// Split generates train/test indices for each fold over n rows.
// Fold sizes differ by at most one row and together cover every row once.
func (kf *KFold) Split(n int) []Fold {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	if kf.Shuffle {
		r := rand.New(rand.NewPCG(uint64(kf.Seed), uint64(kf.Seed)))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	nSplits := kf.NSplits
	if nSplits > n {
		nSplits = n
	}

	folds := make([]Fold, nSplits)
	foldSize := n / nSplits
	remainder := n % nSplits

	isTest := make([]bool, n)
	currentIdx := 0
	for i := 0; i < nSplits; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}

		testIndices := make([]int, testSize)
		copy(testIndices, indices[currentIdx:currentIdx+testSize])

		for j := range isTest {
			isTest[j] = false
		}
		for _, idx := range testIndices {
			isTest[idx] = true
		}

		trainIndices := make([]int, 0, n-testSize)
		for _, idx := range indices {
			if !isTest[idx] {
				trainIndices = append(trainIndices, idx)
			}
		}

		folds[i] = Fold{
			TrainIndices: trainIndices,
			TestIndices:  testIndices,
		}
		currentIdx += testSize
	}

	return folds
}
