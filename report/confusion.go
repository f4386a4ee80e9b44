package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/YuminosukeSato/evoclass/metrics"
)

// WriteAccuracy prints a one-line accuracy summary for a model kind.
func WriteAccuracy(w io.Writer, kind string, accuracy float64) {
	fmt.Fprintf(w, "%s holdout accuracy: %.1f%%\n", kind, accuracy*100)
}

// WriteConfusionMatrix renders the matrix as a table with true classes as
// rows and predicted classes as columns, including marginal totals.
func WriteConfusionMatrix(w io.Writer, cm *metrics.ConfusionMatrix) {
	table := tablewriter.NewWriter(w)

	header := []string{"true \\ predicted"}
	for _, c := range cm.Classes {
		header = append(header, c)
	}
	header = append(header, "total")
	table.SetHeader(header)

	rowTotals := cm.RowTotals()
	for i, c := range cm.Classes {
		row := []string{c}
		for j := range cm.Classes {
			row = append(row, strconv.Itoa(cm.At(i, j)))
		}
		row = append(row, strconv.Itoa(rowTotals[i]))
		table.Append(row)
	}

	footer := []string{"total"}
	for _, t := range cm.ColTotals() {
		footer = append(footer, strconv.Itoa(t))
	}
	footer = append(footer, strconv.Itoa(cm.Total()))
	table.Append(footer)

	table.Render()
}

// WriteRanking prints the importance ranking in descending score order.
func WriteRanking(w io.Writer, ranking []FeatureImportance) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"feature", "importance"})
	for _, fi := range ranking {
		table.Append([]string{fi.Name, strconv.FormatFloat(fi.Score, 'f', 4, 64)})
	}
	table.Render()
}

// WriteTreeDiagram prints the delegate's textual tree rendering.
func WriteTreeDiagram(w io.Writer, diagram string) {
	fmt.Fprintln(w, diagram)
}
