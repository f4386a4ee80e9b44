package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
	"github.com/YuminosukeSato/evoclass/pkg/log"
)

// LoadOptions controls how a delimited sample file is interpreted.
type LoadOptions struct {
	// LabelColumn names the column coerced to the categorical label.
	LabelColumn string

	// IdentifierColumns names columns carried through but excluded from
	// modeling (e.g. "name", "dex").
	IdentifierColumns []string

	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Load reads a delimited text table with a header row into a Table.
//
// Every column that is neither the label nor an identifier is parsed as a
// numeric feature. Rows with missing values are rejected, as are negative
// feature values and label columns with anything other than exactly two
// category values. All failures surface as InputError with the offending
// row number.
func Load(path string, opts LoadOptions) (*Table, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewInputError(path, 0, "open failed", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	if opts.Comma != 0 {
		r.Comma = opts.Comma
	}
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.NewInputError(path, 0, "empty file", nil)
	}
	if err != nil {
		return nil, errors.NewInputError(path, 0, "header read failed", err)
	}

	labelIdx := -1
	identIdx := make(map[int]int, len(opts.IdentifierColumns)) // column -> identifier position
	var featureIdx []int
	var featureNames []string

	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		if name == opts.LabelColumn {
			labelIdx = i
			continue
		}
		pos := -1
		for j, id := range opts.IdentifierColumns {
			if name == id {
				pos = j
				break
			}
		}
		if pos >= 0 {
			identIdx[i] = pos
			continue
		}
		featureIdx = append(featureIdx, i)
		featureNames = append(featureNames, name)
	}

	if labelIdx < 0 {
		return nil, errors.NewInputError(path, 0, "label column '"+opts.LabelColumn+"' not found in header", nil)
	}
	if len(identIdx) != len(opts.IdentifierColumns) {
		return nil, errors.NewInputError(path, 0, "identifier column missing from header", nil)
	}
	if len(featureIdx) == 0 {
		return nil, errors.NewInputError(path, 0, "no feature columns", nil)
	}

	var (
		rows     [][]float64
		labels   []string
		idents   [][]string
		rowNum   = 1 // header row
		nColumns = len(header)
	)

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, errors.NewInputError(path, rowNum, "malformed row", err)
		}
		if len(record) != nColumns {
			return nil, errors.NewInputError(path, rowNum,
				"expected "+strconv.Itoa(nColumns)+" columns, got "+strconv.Itoa(len(record)), nil)
		}

		features := make([]float64, len(featureIdx))
		for j, col := range featureIdx {
			raw := strings.TrimSpace(record[col])
			if raw == "" || raw == "NA" {
				return nil, errors.NewInputError(path, rowNum,
					"missing value in feature '"+featureNames[j]+"'", nil)
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.NewInputError(path, rowNum,
					"non-numeric value '"+raw+"' in feature '"+featureNames[j]+"'", nil)
			}
			if v < 0 {
				return nil, errors.NewInputError(path, rowNum,
					"negative value in feature '"+featureNames[j]+"'", nil)
			}
			features[j] = v
		}

		label := strings.TrimSpace(record[labelIdx])
		if label == "" {
			return nil, errors.NewInputError(path, rowNum, "missing label", nil)
		}

		ident := make([]string, len(opts.IdentifierColumns))
		for col, pos := range identIdx {
			ident[pos] = strings.TrimSpace(record[col])
		}

		rows = append(rows, features)
		labels = append(labels, label)
		idents = append(idents, ident)
	}

	if len(rows) == 0 {
		return nil, errors.NewInputError(path, 0, "no data rows", nil)
	}

	classes := distinct(labels)
	if len(classes) != 2 {
		return nil, errors.NewInputError(path, 0,
			"label column must have exactly two categories, found "+strconv.Itoa(len(classes)), nil)
	}

	classIdx := map[string]int{classes[0]: 0, classes[1]: 1}
	y := make([]int, len(labels))
	for i, l := range labels {
		y[i] = classIdx[l]
	}

	X := mat.NewDense(len(rows), len(featureIdx), nil)
	for i, row := range rows {
		X.SetRow(i, row)
	}

	t := &Table{
		FeatureNames:    featureNames,
		IdentifierNames: opts.IdentifierColumns,
		Identifiers:     idents,
		X:               X,
		Y:               y,
		Classes:         classes,
	}

	log.GetLoggerWithName("dataset").Info("table loaded",
		log.OperationKey, log.OperationLoad,
		log.PathKey, path,
		log.SamplesKey, t.NumRows(),
		log.FeaturesKey, t.NumFeatures(),
		log.ClassesKey, len(t.Classes),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return t, nil
}

// distinct returns the unique values in lexicographic order.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
