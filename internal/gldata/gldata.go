// Package gldata converts gonum feature matrices into golearn instance grids.
// The decision-tree delegate speaks golearn's base.FixedDataGrid; the rest of
// the pipeline speaks *mat.Dense plus integer labels. This package is the
// translation layer between the two.
package gldata

import (
	"strconv"

	"github.com/sjwhitworth/golearn/base"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
)

// Instances builds a DenseInstances grid with one float attribute per feature
// column and a categorical class attribute holding the label names.
//
// y may be nil for prediction inputs; rows are then filled with the first
// class name, which golearn requires structurally but ignores when predicting.
// Both class names are pre-registered on the class attribute so the
// categorical value order matches the classes slice regardless of which
// labels appear in the rows.
func Instances(X mat.Matrix, y []int, featureNames, classes []string) (*base.DenseInstances, error) {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	if len(featureNames) != cols {
		return nil, errors.NewDimensionError("gldata.Instances", len(featureNames), cols, 1)
	}
	if y != nil && len(y) != rows {
		return nil, errors.NewDimensionError("gldata.Instances", rows, len(y), 0)
	}
	if len(classes) < 2 {
		return nil, errors.NewValueError("gldata.Instances", "need at least two class names")
	}
	seen := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		if _, dup := seen[c]; dup {
			return nil, errors.NewValueError("gldata.Instances", "duplicate class name '"+c+"'")
		}
		seen[c] = struct{}{}
	}

	inst := base.NewDenseInstances()

	featSpecs := make([]base.AttributeSpec, cols)
	featAttrs := make([]*base.FloatAttribute, cols)
	for j, name := range featureNames {
		attr := base.NewFloatAttribute(name)
		featAttrs[j] = attr
		featSpecs[j] = inst.AddAttribute(attr)
	}

	classAttr := new(base.CategoricalAttribute)
	classAttr.SetName("class")
	for _, c := range classes {
		classAttr.GetSysValFromString(c)
	}
	classSpec := inst.AddAttribute(classAttr)
	if err := inst.AddClassAttribute(classAttr); err != nil {
		return nil, errors.NewDelegateError("golearn", "build instances", err)
	}

	if err := inst.Extend(rows); err != nil {
		return nil, errors.NewDelegateError("golearn", "build instances", err)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := strconv.FormatFloat(X.At(i, j), 'f', -1, 64)
			inst.Set(featSpecs[j], i, featAttrs[j].GetSysValFromString(v))
		}
		label := classes[0]
		if y != nil {
			if y[i] < 0 || y[i] >= len(classes) {
				return nil, errors.NewValueError("gldata.Instances",
					"label "+strconv.Itoa(y[i])+" out of class range")
			}
			label = classes[y[i]]
		}
		inst.Set(classSpec, i, classAttr.GetSysValFromString(label))
	}

	return inst, nil
}

// Labels reads the class column of a prediction grid back into class indices.
func Labels(grid base.FixedDataGrid, classes []string) ([]int, error) {
	_, rows := grid.Size()
	out := make([]int, rows)
	for i := 0; i < rows; i++ {
		name := base.GetClass(grid, i)
		idx := -1
		for j, c := range classes {
			if c == name {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, errors.NewEvaluationError("gldata.Labels",
				"predicted class '"+name+"' is not a known category")
		}
		out[i] = idx
	}
	return out, nil
}
