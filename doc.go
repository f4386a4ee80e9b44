// Package evoclass is an educational walkthrough of decision-tree
// classification in Go: predicting whether a creature has evolved from
// summary statistics of its cry.
//
// The library loads a small tabular dataset, splits off a holdout set with a
// seeded permutation, trains three kinds of tree models through external
// delegates, sweeps hyperparameter grids with cross-validation, and reports
// accuracy, confusion matrices, and feature-importance rankings.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/YuminosukeSato/evoclass/pipeline"
//	)
//
//	func main() {
//	    cfg := pipeline.DefaultConfig("cries.csv")
//	    summary, err := pipeline.Run(cfg, os.Stdout)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = summary
//	}
//
// # Packages
//
//   - dataset: loading, validation, and seeded train/test splitting
//   - tree: single pruned decision tree (ID3 with Chi-Merge discretization)
//   - forest: bagged random forest with out-of-bag feature importance
//   - boost: gradient-boosted trees via LightGBM-style delegate
//   - tuning: hyperparameter grids, k-fold splitting, cross-validated search
//   - metrics: accuracy, confusion matrix, multiclass Brier score
//   - report: text reports, importance rankings, and bar charts
//   - pipeline: the end-to-end walkthrough
//   - core/model: capability interfaces and shared estimator state
//   - core/parallel: bounded worker pools
//
// All model fitting is delegated to external libraries; this module supplies
// the data plumbing, evaluation, and reporting around them.
//
// # License
//
// evoclass is released under the MIT License.
package evoclass
