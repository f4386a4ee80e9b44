// Package report renders the pipeline's human-readable outputs: accuracy
// lines, confusion-matrix tables, feature-importance rankings with a bar
// chart, and the fitted tree diagram. Nothing here is machine-consumed.
package report

import (
	"sort"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
)

// FeatureImportance pairs a feature name with its importance score.
type FeatureImportance struct {
	Name  string
	Score float64
}

// Ranking pairs feature names with the delegate's importance scores and sorts
// them by non-increasing score. Negative scores are rejected; the delegate's
// importance accounting never produces them, so one indicates a mismatch
// between the score slice and the feature columns.
func Ranking(names []string, scores []float64) ([]FeatureImportance, error) {
	if len(names) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	if len(names) != len(scores) {
		return nil, errors.NewDimensionError("report.Ranking", len(names), len(scores), 1)
	}

	ranking := make([]FeatureImportance, len(names))
	for i, name := range names {
		if scores[i] < 0 {
			return nil, errors.NewEvaluationError("report.Ranking",
				"negative importance score for feature '"+name+"'")
		}
		ranking[i] = FeatureImportance{Name: name, Score: scores[i]}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	return ranking, nil
}
