package tuning

import (
	"testing"
)

func TestKFoldSplitCoverage(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		nSplits int
	}{
		{"even split", 100, 5},
		{"uneven split", 103, 5},
		{"two folds", 10, 2},
		{"more splits than rows", 3, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kf := NewKFold(tt.nSplits, 42)
			folds := kf.Split(tt.n)

			wantFolds := tt.nSplits
			if wantFolds > tt.n {
				wantFolds = tt.n
			}
			if len(folds) != wantFolds {
				t.Fatalf("len(folds) = %d, want %d", len(folds), wantFolds)
			}

			seen := make([]int, tt.n)
			for _, fold := range folds {
				// 各フォールドでtrainとtestは互いに素で全行を覆う
				if len(fold.TrainIndices)+len(fold.TestIndices) != tt.n {
					t.Errorf("fold covers %d rows, want %d",
						len(fold.TrainIndices)+len(fold.TestIndices), tt.n)
				}
				inTest := make(map[int]bool, len(fold.TestIndices))
				for _, idx := range fold.TestIndices {
					inTest[idx] = true
					seen[idx]++
				}
				for _, idx := range fold.TrainIndices {
					if inTest[idx] {
						t.Errorf("index %d in both train and test", idx)
					}
				}
			}

			// 全行がちょうど一度ずつテスト側に現れる
			for i, c := range seen {
				if c != 1 {
					t.Errorf("row %d appears in %d test folds, want 1", i, c)
				}
			}

			// フォールドサイズの差は高々1
			minSize, maxSize := tt.n, 0
			for _, fold := range folds {
				if len(fold.TestIndices) < minSize {
					minSize = len(fold.TestIndices)
				}
				if len(fold.TestIndices) > maxSize {
					maxSize = len(fold.TestIndices)
				}
			}
			if maxSize-minSize > 1 {
				t.Errorf("fold sizes differ by %d, want at most 1", maxSize-minSize)
			}
		})
	}
}

func TestKFoldDeterminism(t *testing.T) {
	folds1 := NewKFold(5, 7).Split(50)
	folds2 := NewKFold(5, 7).Split(50)

	for i := range folds1 {
		if len(folds1[i].TestIndices) != len(folds2[i].TestIndices) {
			t.Fatalf("fold %d size differs between identical seeds", i)
		}
		for j := range folds1[i].TestIndices {
			if folds1[i].TestIndices[j] != folds2[i].TestIndices[j] {
				t.Fatalf("fold %d index %d differs between identical seeds", i, j)
			}
		}
	}
}

func TestNewKFoldClampsSplits(t *testing.T) {
	if kf := NewKFold(1, 0); kf.NSplits != 5 {
		t.Errorf("NSplits = %d, want default 5", kf.NSplits)
	}
	if kf := NewKFold(0, 0); kf.NSplits != 5 {
		t.Errorf("NSplits = %d, want default 5", kf.NSplits)
	}
}
