// Package boost fits gradient-boosted trees by delegating to the scigo
// LightGBM classifier. The boosting objective, histogram construction, and
// leaf growth are owned by the delegate; this wrapper forwards
// hyperparameters, adapts the label representation, and exposes the
// delegate's gain-based feature-importance accounting.
package boost

import (
	"fmt"
	"time"

	lightgbm "github.com/YuminosukeSato/scigo/sklearn/lightgbm"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/core/model"
	"github.com/YuminosukeSato/evoclass/pkg/errors"
	"github.com/YuminosukeSato/evoclass/pkg/log"
)

// GradientBoosting wraps the delegate booster behind the Classifier
// capability interface.
type GradientBoosting struct {
	model.BaseEstimator

	// NumIterations is the number of boosting rounds.
	NumIterations int
	// LearningRate shrinks each tree's contribution.
	LearningRate float64
	// MaxDepth limits tree depth; -1 means unlimited.
	MaxDepth int
	// NumLeaves limits leaves per tree.
	NumLeaves int
	// Seed makes the delegate deterministic for a fixed value.
	Seed int

	nFeatures int
	delegate  *lightgbm.LGBMClassifier
}

// New returns an unfitted booster with the delegate's usual defaults.
func New() *GradientBoosting {
	return &GradientBoosting{
		NumIterations: 100,
		LearningRate:  0.1,
		MaxDepth:      -1,
		NumLeaves:     31,
	}
}

// Fit trains the delegate on the labeled rows.
func (g *GradientBoosting) Fit(X mat.Matrix, y []int) error {
	start := time.Now()
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.WithStack(errors.ErrEmptyData)
	}
	if len(y) != rows {
		return errors.NewDimensionError("GradientBoosting.Fit", rows, len(y), 0)
	}
	if g.NumIterations < 1 {
		return errors.NewConfigError("n_estimators", "must be at least 1", g.NumIterations)
	}
	if g.LearningRate <= 0 {
		return errors.NewConfigError("learning_rate", "must be positive", g.LearningRate)
	}

	yMat := mat.NewDense(rows, 1, nil)
	for i, label := range y {
		if label < 0 {
			return errors.NewValueError("GradientBoosting.Fit", "negative class label")
		}
		yMat.Set(i, 0, float64(label))
	}

	clf := lightgbm.NewLGBMClassifier()
	if err := clf.SetParams(map[string]interface{}{
		"n_estimators":  g.NumIterations,
		"learning_rate": g.LearningRate,
		"max_depth":     g.MaxDepth,
		"num_leaves":    g.NumLeaves,
	}); err != nil {
		return errors.NewConfigError("hyperparameters", "rejected by delegate", err.Error())
	}
	clf.RandomState = g.Seed

	dense, ok := X.(*mat.Dense)
	if !ok {
		dense = mat.DenseCopyOf(X)
	}
	err := errors.SafeExecute("GradientBoosting.Fit", func() error {
		return clf.Fit(dense, yMat)
	})
	if err != nil {
		return errors.NewDelegateError("lightgbm", "fit", err)
	}

	g.delegate = clf
	g.nFeatures = cols
	g.SetFitted()

	log.GetLoggerWithName("boost").Info("gradient boosting fitted",
		log.OperationKey, log.OperationFit,
		log.DelegateKey, "lightgbm",
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		"n_estimators", g.NumIterations,
		"learning_rate", g.LearningRate,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict returns one class index per row of X.
func (g *GradientBoosting) Predict(X mat.Matrix) ([]int, error) {
	if err := g.checkPredictInput(X); err != nil {
		return nil, err
	}

	var preds mat.Matrix
	err := errors.SafeExecute("GradientBoosting.Predict", func() error {
		var perr error
		preds, perr = g.delegate.Predict(X)
		return perr
	})
	if err != nil {
		return nil, errors.NewDelegateError("lightgbm", "predict", err)
	}

	rows, _ := preds.Dims()
	out := make([]int, rows)
	for i := 0; i < rows; i++ {
		out[i] = int(preds.At(i, 0))
	}
	return out, nil
}

// PredictProba returns per-class probabilities for each row.
func (g *GradientBoosting) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if err := g.checkPredictInput(X); err != nil {
		return nil, err
	}

	var proba mat.Matrix
	err := errors.SafeExecute("GradientBoosting.PredictProba", func() error {
		var perr error
		proba, perr = g.delegate.PredictProba(X)
		return perr
	})
	if err != nil {
		return nil, errors.NewDelegateError("lightgbm", "predict", err)
	}

	if dense, ok := proba.(*mat.Dense); ok {
		return dense, nil
	}
	return mat.DenseCopyOf(proba), nil
}

// FeatureImportance returns the delegate's gain-based importance scores,
// aligned with the training matrix's column order.
func (g *GradientBoosting) FeatureImportance() []float64 {
	if !g.IsFitted() {
		return nil
	}
	return g.delegate.GetFeatureImportance("gain")
}

func (g *GradientBoosting) checkPredictInput(X mat.Matrix) error {
	if !g.IsFitted() {
		return errors.NewNotFittedError("GradientBoosting", "Predict")
	}
	_, cols := X.Dims()
	if cols != g.nFeatures {
		return errors.NewEvaluationError("GradientBoosting.Predict",
			fmt.Sprintf("feature count mismatch: fitted on %d, got %d", g.nFeatures, cols))
	}
	return nil
}
