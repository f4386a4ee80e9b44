package tuning

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/core/model"
	"github.com/YuminosukeSato/evoclass/core/parallel"
	"github.com/YuminosukeSato/evoclass/metrics"
	"github.com/YuminosukeSato/evoclass/pkg/errors"
	"github.com/YuminosukeSato/evoclass/pkg/log"
)

// Scoring selects the cross-validation metric used to rank grid points.
type Scoring string

const (
	// ScoringAccuracy ranks points by mean fold accuracy (higher is better).
	ScoringAccuracy Scoring = "accuracy"

	// ScoringBrier ranks points by mean multiclass Brier score (lower is
	// better). Requires the factory's models to implement
	// model.ProbabilityEstimator.
	ScoringBrier Scoring = "brier"
)

// isLossScoring reports whether lower scores are better for the metric.
func isLossScoring(s Scoring) bool {
	return s == ScoringBrier
}

// Factory builds a fresh unfitted classifier for a grid point. Each point and
// fold gets its own instance, so implementations must not share fitted state.
type Factory func(Point) (model.Classifier, error)

// PointScore is the cross-validated score of a single grid point.
type PointScore struct {
	Point Point
	Score float64
}

// Result summarizes a sweep: the best-scoring point and every point's score,
// in grid enumeration order.
type Result struct {
	Best      Point
	BestScore float64
	Scores    []PointScore
}

// GridSearch evaluates every point of a hyperparameter grid with k-fold
// cross-validation and reports the best combination. Points are independent
// and scored in parallel, bounded by CoreFraction of the available cores.
type GridSearch struct {
	Grid    *Grid
	Factory Factory

	// Folds is the number of cross-validation folds (minimum 2, default 5).
	Folds int

	// Seed drives the fold shuffling.
	Seed int64

	// Scoring defaults to ScoringAccuracy.
	Scoring Scoring

	// CoreFraction bounds sweep parallelism; zero falls back to all cores.
	CoreFraction float64
}

// Run sweeps the grid over the labeled rows and returns the best point.
// Any fold failure aborts the entire sweep.
func (gs *GridSearch) Run(X *mat.Dense, y []int) (*Result, error) {
	start := time.Now()

	if gs.Grid == nil {
		return nil, errors.NewConfigError("grid", "must not be nil", nil)
	}
	if gs.Factory == nil {
		return nil, errors.NewConfigError("factory", "must not be nil", nil)
	}
	rows, _ := X.Dims()
	if rows == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	if len(y) != rows {
		return nil, errors.NewDimensionError("GridSearch.Run", rows, len(y), 0)
	}

	scoring := gs.Scoring
	if scoring == "" {
		scoring = ScoringAccuracy
	}
	if scoring != ScoringAccuracy && scoring != ScoringBrier {
		return nil, errors.NewConfigError("scoring", "unknown metric", string(scoring))
	}

	points, err := gs.Grid.Points()
	if err != nil {
		return nil, err
	}

	folds := NewKFold(gs.Folds, gs.Seed).Split(rows)

	scores := make([]float64, len(points))
	errs := make([]error, len(points))

	parallel.ParallelizeFraction(len(points), gs.CoreFraction, func(startIdx, endIdx int) {
		for i := startIdx; i < endIdx; i++ {
			scores[i], errs[i] = gs.scorePoint(points[i], folds, X, y, scoring)
		}
	})

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	result := &Result{Scores: make([]PointScore, len(points))}
	loss := isLossScoring(scoring)
	for i, p := range points {
		result.Scores[i] = PointScore{Point: p, Score: scores[i]}
		better := scores[i] > result.BestScore
		if loss {
			better = scores[i] < result.BestScore
		}
		if i == 0 || better {
			result.Best = p
			result.BestScore = scores[i]
		}
	}

	log.GetLoggerWithName("tuning").Info("grid sweep finished",
		log.OperationKey, log.OperationTune,
		log.GridSizeKey, len(points),
		log.ScoringKey, string(scoring),
		log.GridPointKey, result.Best.String(),
		"best_score", result.BestScore,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return result, nil
}

// scorePoint trains and scores one hyperparameter combination across folds
// and returns the mean score.
func (gs *GridSearch) scorePoint(p Point, folds []Fold, X *mat.Dense, y []int, scoring Scoring) (float64, error) {
	var total float64
	for _, fold := range folds {
		clf, err := gs.Factory(p)
		if err != nil {
			return 0, err
		}

		trainX, trainY := extractSubset(X, y, fold.TrainIndices)
		testX, testY := extractSubset(X, y, fold.TestIndices)

		if err := clf.Fit(trainX, trainY); err != nil {
			return 0, err
		}

		switch scoring {
		case ScoringBrier:
			prob, ok := clf.(model.ProbabilityEstimator)
			if !ok {
				return 0, errors.NewConfigError("scoring",
					"brier scoring requires a probability-estimating model", p.String())
			}
			proba, err := prob.PredictProba(testX)
			if err != nil {
				return 0, err
			}
			score, err := metrics.BrierScore(testY, proba)
			if err != nil {
				return 0, err
			}
			total += score
		default:
			preds, err := clf.Predict(testX)
			if err != nil {
				return 0, err
			}
			score, err := metrics.Accuracy(testY, preds)
			if err != nil {
				return 0, err
			}
			total += score
		}
	}
	return total / float64(len(folds)), nil
}

// extractSubset copies the selected rows of X and y.
func extractSubset(X *mat.Dense, y []int, indices []int) (*mat.Dense, []int) {
	_, cols := X.Dims()
	subX := mat.NewDense(len(indices), cols, nil)
	subY := make([]int, len(indices))
	for i, idx := range indices {
		subX.SetRow(i, mat.Row(nil, idx, X))
		subY[i] = y[idx]
	}
	return subX, subY
}
