// Package pipeline runs the full classification walkthrough: load the sample
// table, split off a holdout, fit each model kind through its delegate
// (sweeping a hyperparameter grid where one is configured), evaluate on the
// holdout, and render reports. Execution is a single forward pass per model
// kind; any stage failure aborts the run and surfaces to the caller.
package pipeline

import (
	"github.com/YuminosukeSato/evoclass/pkg/errors"
	"github.com/YuminosukeSato/evoclass/tuning"
)

// TreeConfig configures the single-decision-tree stage.
type TreeConfig struct {
	// PruneSplit is the fraction of training rows the delegate holds back
	// for rule pruning.
	PruneSplit float64
}

// ForestConfig configures the random-forest stage.
type ForestConfig struct {
	// Trees is the ensemble size when no grid is swept.
	Trees int

	// TreesGrid, when non-empty, sweeps the ensemble size by
	// cross-validation and uses the best value instead of Trees.
	TreesGrid []float64

	// Folds is the cross-validation fold count for the sweep.
	Folds int
}

// BoostConfig configures the gradient-boosting stage.
type BoostConfig struct {
	NumIterations int
	LearningRate  float64
	MaxDepth      int
	NumLeaves     int

	// DepthGrid and RateGrid, when non-empty, sweep max depth and learning
	// rate jointly by cross-validation.
	DepthGrid []float64
	RateGrid  []float64

	// Folds is the cross-validation fold count for the sweep.
	Folds int

	// Scoring ranks grid points; defaults to accuracy.
	Scoring tuning.Scoring
}

// Config is the explicit per-run configuration. There is no process-wide
// state; everything a run needs is carried here.
type Config struct {
	// DataPath locates the delimited sample file.
	DataPath string

	// LabelColumn and IdentifierColumns describe the table schema.
	LabelColumn       string
	IdentifierColumns []string

	// Fraction is the training share of the holdout split.
	Fraction float64

	// Seed drives the split permutation and fold shuffling.
	Seed int64

	// CoreFraction bounds sweep parallelism to this share of CPU cores.
	CoreFraction float64

	// ChartDir, when non-empty, is where importance bar charts are saved.
	ChartDir string

	Tree   TreeConfig
	Forest ForestConfig
	Boost  BoostConfig
}

// DefaultConfig returns the walkthrough's standard configuration for a data
// file: 70/30 split, seed 1, 80% of cores, and the delegates' usual
// hyperparameters with a small boosting grid.
func DefaultConfig(dataPath string) Config {
	return Config{
		DataPath:          dataPath,
		LabelColumn:       "stage",
		IdentifierColumns: []string{"name", "dex"},
		Fraction:          0.7,
		Seed:              1,
		CoreFraction:      0.8,
		Tree:              TreeConfig{PruneSplit: 0.6},
		Forest: ForestConfig{
			Trees: 300,
			Folds: 5,
		},
		Boost: BoostConfig{
			NumIterations: 100,
			LearningRate:  0.1,
			MaxDepth:      -1,
			NumLeaves:     31,
			DepthGrid:     []float64{3, 6, 9},
			RateGrid:      []float64{0.3, 0.1, 0.03},
			Folds:         5,
			Scoring:       tuning.ScoringAccuracy,
		},
	}
}

// Validate checks the configuration before any work starts.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return errors.NewConfigError("data_path", "must not be empty", c.DataPath)
	}
	if c.LabelColumn == "" {
		return errors.NewConfigError("label_column", "must not be empty", c.LabelColumn)
	}
	if !(c.Fraction > 0 && c.Fraction < 1) {
		return errors.NewConfigError("fraction", "must be in (0,1)", c.Fraction)
	}
	if c.CoreFraction < 0 || c.CoreFraction > 1 {
		return errors.NewConfigError("core_fraction", "must be in [0,1]", c.CoreFraction)
	}
	if c.Tree.PruneSplit <= 0 || c.Tree.PruneSplit >= 1 {
		return errors.NewConfigError("tree.prune_split", "must be in (0,1)", c.Tree.PruneSplit)
	}
	if len(c.Forest.TreesGrid) == 0 && c.Forest.Trees < 1 {
		return errors.NewConfigError("forest.trees", "ensemble size must be at least 1", c.Forest.Trees)
	}
	for _, v := range c.Forest.TreesGrid {
		if v < 1 {
			return errors.NewConfigError("forest.trees_grid", "ensemble sizes must be at least 1", v)
		}
	}
	if c.Boost.NumIterations < 1 {
		return errors.NewConfigError("boost.n_estimators", "must be at least 1", c.Boost.NumIterations)
	}
	if c.Boost.LearningRate <= 0 {
		return errors.NewConfigError("boost.learning_rate", "must be positive", c.Boost.LearningRate)
	}
	for _, v := range c.Boost.RateGrid {
		if v <= 0 {
			return errors.NewConfigError("boost.rate_grid", "learning rates must be positive", v)
		}
	}
	return nil
}
