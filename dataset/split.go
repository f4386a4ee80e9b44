package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
	"github.com/YuminosukeSato/evoclass/pkg/log"
)

// TrainTestSplit partitions the table into disjoint training and holdout
// subsets whose union is the full table. Membership is decided by a seeded
// pseudo-random permutation of the row indices, so a fixed (fraction, seed)
// pair always reproduces the same partition. The training subset receives
// round(fraction * rows) rows.
//
// Returns ConfigError (InvalidFraction) unless 0 < fraction < 1.
func TrainTestSplit(t *Table, fraction float64, seed int64) (train, test *Table, err error) {
	if !(fraction > 0 && fraction < 1) {
		return nil, nil, errors.NewConfigError("fraction", "must be in (0,1)", fraction)
	}
	n := t.NumRows()
	if n == 0 {
		return nil, nil, errors.WithStack(errors.ErrEmptyData)
	}

	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	perm := r.Perm(n)

	nTrain := int(math.Floor(fraction*float64(n) + 0.5))
	if nTrain < 1 {
		nTrain = 1
	}
	if nTrain >= n {
		nTrain = n - 1
	}

	train, err = t.Subset(perm[:nTrain])
	if err != nil {
		return nil, nil, err
	}
	test, err = t.Subset(perm[nTrain:])
	if err != nil {
		return nil, nil, err
	}

	log.GetLoggerWithName("dataset").Info("holdout split created",
		log.OperationKey, log.OperationSplit,
		log.SeedKey, seed,
		log.FractionKey, fraction,
		log.TrainRowsKey, train.NumRows(),
		log.TestRowsKey, test.NumRows(),
	)
	return train, test, nil
}
