// Package dataset loads the cry sound-count sample table and partitions it into
// training and holdout subsets. The table is read-only after loading; every
// downstream stage (training, tuning, evaluation) works on row subsets of it.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
)

// Table is an ordered collection of labeled samples. Feature columns are
// non-negative numeric sound counts; identifier columns (name, designation) are
// carried for reporting but excluded from modeling. The label has exactly two
// categories whose names are held in Classes, in lexicographic order, and Y
// stores per-row indices into Classes.
type Table struct {
	FeatureNames    []string
	IdentifierNames []string

	// Identifiers is row-major, aligned with IdentifierNames.
	Identifiers [][]string

	// X is the rows × features matrix used for fitting and prediction.
	X *mat.Dense

	// Y holds one class index per row.
	Y []int

	// Classes holds the two label category names.
	Classes []string
}

// NumRows returns the number of samples in the table.
func (t *Table) NumRows() int {
	if t.X == nil {
		return 0
	}
	r, _ := t.X.Dims()
	return r
}

// NumFeatures returns the number of feature columns.
func (t *Table) NumFeatures() int {
	if t.X == nil {
		return 0
	}
	_, c := t.X.Dims()
	return c
}

// Subset returns a new table containing the given rows, in the given order.
// The split and cross-validation fold construction are both built on this.
func (t *Table) Subset(indices []int) (*Table, error) {
	if len(indices) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	n := t.NumRows()
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, errors.NewValueError("Subset", "row index out of range")
		}
	}

	nf := t.NumFeatures()
	sub := &Table{
		FeatureNames:    t.FeatureNames,
		IdentifierNames: t.IdentifierNames,
		Identifiers:     make([][]string, len(indices)),
		X:               mat.NewDense(len(indices), nf, nil),
		Y:               make([]int, len(indices)),
		Classes:         t.Classes,
	}

	for i, idx := range indices {
		sub.X.SetRow(i, mat.Row(nil, idx, t.X))
		sub.Y[i] = t.Y[idx]
		if len(t.Identifiers) > idx {
			sub.Identifiers[i] = t.Identifiers[idx]
		}
	}
	return sub, nil
}
