// Package tree fits a single decision tree by delegating to golearn's ID3
// implementation. Continuous sound-count features are discretized with a
// Chi-Merge filter before fitting; the trained filter is kept so prediction
// inputs pass through the same binning. The splitting criterion and tree
// growth recursion are owned entirely by the delegate.
package tree

import (
	"fmt"
	"time"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/filters"
	"github.com/sjwhitworth/golearn/trees"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/core/model"
	"github.com/YuminosukeSato/evoclass/internal/gldata"
	"github.com/YuminosukeSato/evoclass/pkg/errors"
	"github.com/YuminosukeSato/evoclass/pkg/log"
)

// DecisionTree wraps golearn's ID3 decision tree behind the Classifier
// capability interface.
type DecisionTree struct {
	model.BaseEstimator

	// PruneSplit is the fraction of training data held back for rule pruning.
	PruneSplit float64

	// Significance is the Chi-Merge discretization significance level.
	Significance float64

	featureNames []string
	classes      []string
	nFeatures    int

	delegate *trees.ID3DecisionTree
	filter   *filters.ChiMergeFilter
}

// New returns an unfitted decision tree for the given feature and class names.
func New(featureNames, classes []string) *DecisionTree {
	return &DecisionTree{
		PruneSplit:   0.6,
		Significance: 0.999,
		featureNames: featureNames,
		classes:      classes,
	}
}

// Fit trains the delegate on the labeled rows.
func (t *DecisionTree) Fit(X mat.Matrix, y []int) error {
	start := time.Now()
	_, cols := X.Dims()

	inst, err := gldata.Instances(X, y, t.featureNames, t.classes)
	if err != nil {
		return err
	}

	filt := filters.NewChiMergeFilter(inst, t.Significance)
	for _, a := range base.NonClassFloatAttributes(inst) {
		filt.AddAttribute(a)
	}
	if err := filt.Train(); err != nil {
		return errors.NewDelegateError("golearn", "fit", err)
	}
	discretized := base.NewLazilyFilteredInstances(inst, filt)

	delegate := trees.NewID3DecisionTree(t.PruneSplit)
	err = errors.SafeExecute("DecisionTree.Fit", func() error {
		return delegate.Fit(discretized)
	})
	if err != nil {
		return errors.NewDelegateError("golearn", "fit", err)
	}

	t.delegate = delegate
	t.filter = filt
	t.nFeatures = cols
	t.SetFitted()

	log.GetLoggerWithName("tree").Info("decision tree fitted",
		log.OperationKey, log.OperationFit,
		log.DelegateKey, "golearn",
		log.FeaturesKey, cols,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict returns one class index per row of X.
func (t *DecisionTree) Predict(X mat.Matrix) ([]int, error) {
	if !t.IsFitted() {
		return nil, errors.NewNotFittedError("DecisionTree", "Predict")
	}
	_, cols := X.Dims()
	if cols != t.nFeatures {
		return nil, errors.NewEvaluationError("DecisionTree.Predict",
			fmt.Sprintf("feature count mismatch: fitted on %d, got %d", t.nFeatures, cols))
	}

	inst, err := gldata.Instances(X, nil, t.featureNames, t.classes)
	if err != nil {
		return nil, err
	}
	discretized := base.NewLazilyFilteredInstances(inst, t.filter)

	var preds base.FixedDataGrid
	err = errors.SafeExecute("DecisionTree.Predict", func() error {
		var perr error
		preds, perr = t.delegate.Predict(discretized)
		return perr
	})
	if err != nil {
		return nil, errors.NewDelegateError("golearn", "predict", err)
	}

	return gldata.Labels(preds, t.classes)
}

// RenderTree returns the delegate's textual rendering of the fitted tree.
func (t *DecisionTree) RenderTree() string {
	if !t.IsFitted() {
		return "(not fitted)"
	}
	return fmt.Sprint(t.delegate)
}
