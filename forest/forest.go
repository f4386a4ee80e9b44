// Package forest fits a random forest by delegating to the
// malaschitz/randomForest library. Bootstrap aggregation and random-subspace
// feature sampling happen inside the delegate; this wrapper only converts the
// sample table's matrix form, validates the configuration, and exposes the
// delegate's vote fractions and feature-importance accounting.
package forest

import (
	"fmt"
	"time"

	randomforest "github.com/malaschitz/randomForest"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/core/model"
	"github.com/YuminosukeSato/evoclass/pkg/errors"
	"github.com/YuminosukeSato/evoclass/pkg/log"
)

// DefaultTrees is the ensemble size used when none is configured.
const DefaultTrees = 300

// RandomForest wraps the delegate forest behind the Classifier capability
// interface.
type RandomForest struct {
	model.BaseEstimator

	// Trees is the number of ensemble members grown during Fit.
	Trees int

	nFeatures  int
	nClasses   int
	importance []float64
	delegate   *randomforest.Forest
}

// New returns an unfitted forest with the given ensemble size.
// A non-positive size falls back to DefaultTrees.
func New(trees int) *RandomForest {
	if trees <= 0 {
		trees = DefaultTrees
	}
	return &RandomForest{Trees: trees}
}

// Fit trains the delegate forest on the labeled rows.
func (f *RandomForest) Fit(X mat.Matrix, y []int) error {
	start := time.Now()
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.WithStack(errors.ErrEmptyData)
	}
	if len(y) != rows {
		return errors.NewDimensionError("RandomForest.Fit", rows, len(y), 0)
	}
	if f.Trees < 1 {
		return errors.NewConfigError("trees", "ensemble size must be at least 1", f.Trees)
	}

	xData := make([][]float64, rows)
	nClasses := 0
	for i := 0; i < rows; i++ {
		xData[i] = mat.Row(nil, i, X)
		if y[i] < 0 {
			return errors.NewValueError("RandomForest.Fit", "negative class label")
		}
		if y[i]+1 > nClasses {
			nClasses = y[i] + 1
		}
	}

	delegate := &randomforest.Forest{}
	delegate.Data = randomforest.ForestData{X: xData, Class: y}
	err := errors.SafeExecute("RandomForest.Fit", func() error {
		delegate.Train(f.Trees)
		return nil
	})
	if err != nil {
		return errors.NewDelegateError("randomForest", "fit", err)
	}

	f.delegate = delegate
	f.nFeatures = cols
	f.nClasses = nClasses
	f.importance = delegate.FeatureImportance
	f.SetFitted()

	log.GetLoggerWithName("forest").Info("random forest fitted",
		log.OperationKey, log.OperationFit,
		log.DelegateKey, "randomForest",
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		"trees", f.Trees,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict returns the majority-vote class index per row.
func (f *RandomForest) Predict(X mat.Matrix) ([]int, error) {
	proba, err := f.PredictProba(X)
	if err != nil {
		return nil, err
	}
	rows, cols := proba.Dims()
	out := make([]int, rows)
	for i := 0; i < rows; i++ {
		best := 0
		for k := 1; k < cols; k++ {
			if proba.At(i, k) > proba.At(i, best) {
				best = k
			}
		}
		out[i] = best
	}
	return out, nil
}

// PredictProba returns per-class vote fractions for each row.
func (f *RandomForest) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if !f.IsFitted() {
		return nil, errors.NewNotFittedError("RandomForest", "Predict")
	}
	rows, cols := X.Dims()
	if cols != f.nFeatures {
		return nil, errors.NewEvaluationError("RandomForest.Predict",
			fmt.Sprintf("feature count mismatch: fitted on %d, got %d", f.nFeatures, cols))
	}

	out := mat.NewDense(rows, f.nClasses, nil)
	err := errors.SafeExecute("RandomForest.Predict", func() error {
		for i := 0; i < rows; i++ {
			votes := f.delegate.Vote(mat.Row(nil, i, X))
			for k := 0; k < f.nClasses && k < len(votes); k++ {
				out.Set(i, k, votes[k])
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewDelegateError("randomForest", "predict", err)
	}
	return out, nil
}

// FeatureImportance returns the delegate's per-feature importance scores.
// The slice is aligned with the training matrix's column order.
func (f *RandomForest) FeatureImportance() []float64 {
	return f.importance
}
