package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/YuminosukeSato/evoclass/boost"
	"github.com/YuminosukeSato/evoclass/core/model"
	"github.com/YuminosukeSato/evoclass/dataset"
	"github.com/YuminosukeSato/evoclass/forest"
	"github.com/YuminosukeSato/evoclass/metrics"
	"github.com/YuminosukeSato/evoclass/pkg/log"
	"github.com/YuminosukeSato/evoclass/report"
	"github.com/YuminosukeSato/evoclass/tree"
	"github.com/YuminosukeSato/evoclass/tuning"
)

// Kind identifies a model stage of the walkthrough.
type Kind string

const (
	KindTree   Kind = "decision tree"
	KindForest Kind = "random forest"
	KindBoost  Kind = "gradient boosting"
)

// Result is the holdout evaluation of one model kind.
type Result struct {
	Kind      Kind
	Accuracy  float64
	Confusion *metrics.ConfusionMatrix

	// Importance is the sorted feature ranking; nil for models that do not
	// expose importances.
	Importance []report.FeatureImportance

	// Diagram is the rendered tree structure; empty for ensemble models.
	Diagram string

	// Best holds the winning grid point when the stage swept a grid.
	Best tuning.Point
}

// Summary is the outcome of a full run.
type Summary struct {
	TrainRows int
	TestRows  int
	Results   []Result
}

// Run executes the walkthrough: load, split, then train and evaluate each
// model kind in order, writing reports to w as it goes. The first error at
// any stage aborts the run.
func Run(cfg Config, w io.Writer) (*Summary, error) {
	logger := log.GetLoggerWithName("pipeline")
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w == nil {
		w = io.Discard
	}

	table, err := dataset.Load(cfg.DataPath, dataset.LoadOptions{
		LabelColumn:       cfg.LabelColumn,
		IdentifierColumns: cfg.IdentifierColumns,
	})
	if err != nil {
		return nil, err
	}

	train, test, err := dataset.TrainTestSplit(table, cfg.Fraction, cfg.Seed)
	if err != nil {
		return nil, err
	}
	logger.Info("split holdout",
		log.SeedKey, cfg.Seed,
		log.FractionKey, cfg.Fraction,
		log.TrainRowsKey, train.NumRows(),
		log.TestRowsKey, test.NumRows(),
	)

	summary := &Summary{TrainRows: train.NumRows(), TestRows: test.NumRows()}

	stages := []func(Config, *dataset.Table, *dataset.Table, io.Writer) (*Result, error){
		runTree,
		runForest,
		runBoost,
	}
	for _, stage := range stages {
		res, err := stage(cfg, train, test, w)
		if err != nil {
			return nil, err
		}
		summary.Results = append(summary.Results, *res)
	}

	logger.Info("run complete", log.DurationMsKey, time.Since(start).Milliseconds())
	return summary, nil
}

// runTree fits a single pruned decision tree and reports its structure.
func runTree(cfg Config, train, test *dataset.Table, w io.Writer) (*Result, error) {
	dt := tree.New(train.FeatureNames, train.Classes)
	dt.PruneSplit = cfg.Tree.PruneSplit

	res, err := evaluate(KindTree, dt, train, test)
	if err != nil {
		return nil, err
	}
	res.Diagram = dt.RenderTree()

	report.WriteAccuracy(w, string(KindTree), res.Accuracy)
	report.WriteConfusionMatrix(w, res.Confusion)
	report.WriteTreeDiagram(w, res.Diagram)
	return res, nil
}

// runForest fits the random forest, optionally sweeping the ensemble size,
// and reports the permutation-style importance ranking.
func runForest(cfg Config, train, test *dataset.Table, w io.Writer) (*Result, error) {
	trees := cfg.Forest.Trees
	var best tuning.Point
	if len(cfg.Forest.TreesGrid) > 0 {
		gs := &tuning.GridSearch{
			Grid: tuning.NewGrid().Add("trees", cfg.Forest.TreesGrid...),
			Factory: func(p tuning.Point) (model.Classifier, error) {
				return forest.New(int(p["trees"])), nil
			},
			Folds:        cfg.Forest.Folds,
			Seed:         cfg.Seed,
			CoreFraction: cfg.CoreFraction,
		}
		sweep, err := gs.Run(train.X, train.Y)
		if err != nil {
			return nil, err
		}
		best = sweep.Best
		trees = int(sweep.Best["trees"])
	}

	rf := forest.New(trees)
	res, err := evaluate(KindForest, rf, train, test)
	if err != nil {
		return nil, err
	}
	res.Best = best

	ranking, err := report.Ranking(train.FeatureNames, rf.FeatureImportance())
	if err != nil {
		return nil, err
	}
	res.Importance = ranking

	report.WriteAccuracy(w, string(KindForest), res.Accuracy)
	report.WriteConfusionMatrix(w, res.Confusion)
	report.WriteRanking(w, ranking)
	return res, nil
}

// runBoost sweeps the boosting grid when one is configured, fits the winner
// on the full training set, and reports the gain-based importance ranking
// with an optional bar chart.
func runBoost(cfg Config, train, test *dataset.Table, w io.Writer) (*Result, error) {
	newBooster := func(depth int, rate float64) *boost.GradientBoosting {
		gb := boost.New()
		gb.NumIterations = cfg.Boost.NumIterations
		gb.LearningRate = rate
		gb.MaxDepth = depth
		gb.NumLeaves = cfg.Boost.NumLeaves
		gb.Seed = int(cfg.Seed)
		return gb
	}

	depth, rate := cfg.Boost.MaxDepth, cfg.Boost.LearningRate
	var best tuning.Point
	if len(cfg.Boost.DepthGrid) > 0 || len(cfg.Boost.RateGrid) > 0 {
		grid := tuning.NewGrid()
		if len(cfg.Boost.DepthGrid) > 0 {
			grid.Add("max_depth", cfg.Boost.DepthGrid...)
		}
		if len(cfg.Boost.RateGrid) > 0 {
			grid.Add("learning_rate", cfg.Boost.RateGrid...)
		}
		gs := &tuning.GridSearch{
			Grid: grid,
			Factory: func(p tuning.Point) (model.Classifier, error) {
				d, r := depth, rate
				if v, ok := p["max_depth"]; ok {
					d = int(v)
				}
				if v, ok := p["learning_rate"]; ok {
					r = v
				}
				return newBooster(d, r), nil
			},
			Folds:        cfg.Boost.Folds,
			Seed:         cfg.Seed,
			Scoring:      cfg.Boost.Scoring,
			CoreFraction: cfg.CoreFraction,
		}
		sweep, err := gs.Run(train.X, train.Y)
		if err != nil {
			return nil, err
		}
		best = sweep.Best
		if v, ok := best["max_depth"]; ok {
			depth = int(v)
		}
		if v, ok := best["learning_rate"]; ok {
			rate = v
		}
	}

	gb := newBooster(depth, rate)
	res, err := evaluate(KindBoost, gb, train, test)
	if err != nil {
		return nil, err
	}
	res.Best = best

	ranking, err := report.Ranking(train.FeatureNames, gb.FeatureImportance())
	if err != nil {
		return nil, err
	}
	res.Importance = ranking

	report.WriteAccuracy(w, string(KindBoost), res.Accuracy)
	report.WriteConfusionMatrix(w, res.Confusion)
	report.WriteRanking(w, ranking)

	if cfg.ChartDir != "" {
		path := filepath.Join(cfg.ChartDir, "importance.png")
		if err := report.SaveImportanceChart(ranking, "Feature importance (gain)", path); err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "importance chart saved to %s\n", path)
	}
	return res, nil
}

// evaluate fits a classifier on the training rows and scores it on the
// holdout.
func evaluate(kind Kind, clf model.Classifier, train, test *dataset.Table) (*Result, error) {
	logger := log.GetLoggerWithName("pipeline")

	if err := clf.Fit(train.X, train.Y); err != nil {
		return nil, err
	}
	pred, err := clf.Predict(test.X)
	if err != nil {
		return nil, err
	}

	cm, err := metrics.NewConfusionMatrix(test.Y, pred, test.Classes)
	if err != nil {
		return nil, err
	}
	acc, err := metrics.Accuracy(test.Y, pred)
	if err != nil {
		return nil, err
	}

	logger.Info("holdout evaluation",
		log.ModelKindKey, string(kind),
		log.AccuracyKey, acc,
		log.TestRowsKey, test.NumRows(),
	)
	return &Result{Kind: kind, Accuracy: acc, Confusion: cm}, nil
}
