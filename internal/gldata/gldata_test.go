package gldata

import (
	"testing"

	"github.com/sjwhitworth/golearn/base"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
)

func TestInstancesLabelsRows(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
		7, 8,
	})
	// The first two rows share a class on purpose: labels must resolve
	// through the class list by index, not through row order.
	y := []int{1, 1, 0, 1}
	classes := []string{"post", "pre"}

	inst, err := Instances(X, y, []string{"a", "b"}, classes)
	if err != nil {
		t.Fatalf("Instances failed: %v", err)
	}

	_, rows := inst.Size()
	if rows != 4 {
		t.Fatalf("grid has %d rows, want 4", rows)
	}
	for i, want := range []string{"pre", "pre", "post", "pre"} {
		if got := base.GetClass(inst, i); got != want {
			t.Errorf("row %d labeled %q, want %q", i, got, want)
		}
	}

	// Both categories must be registered even if only one appears.
	inst2, err := Instances(X, []int{0, 0, 0, 0}, []string{"a", "b"}, classes)
	if err != nil {
		t.Fatalf("Instances failed: %v", err)
	}
	attr := inst2.AllClassAttributes()[0].(*base.CategoricalAttribute)
	if got := len(attr.GetValues()); got != 2 {
		t.Errorf("class attribute holds %d values %v, want 2", got, attr.GetValues())
	}
}

func TestInstancesRejectsBadClassList(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, 2})

	tests := []struct {
		name    string
		classes []string
	}{
		{"single class", []string{"pre"}},
		{"per-row label slice", []string{"post", "post", "pre", "pre"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Instances(X, []int{0, 0}, []string{"a"}, tt.classes)
			if err == nil {
				t.Fatal("expected an error")
			}
			var valErr *errors.ValueError
			if !errors.As(err, &valErr) {
				t.Errorf("error = %v, want *errors.ValueError", err)
			}
		})
	}
}

func TestLabelsRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := []int{0, 1, 0}
	classes := []string{"post", "pre"}

	inst, err := Instances(X, y, []string{"a"}, classes)
	if err != nil {
		t.Fatalf("Instances failed: %v", err)
	}
	got, err := Labels(inst, classes)
	if err != nil {
		t.Fatalf("Labels failed: %v", err)
	}
	for i := range y {
		if got[i] != y[i] {
			t.Errorf("row %d label = %d, want %d", i, got[i], y[i])
		}
	}
}
