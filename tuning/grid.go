// Package tuning sweeps hyperparameter grids with cross-validated scoring.
// Each grid point builds a fresh classifier through a caller-supplied factory,
// so the sweep works for any delegate behind the Classifier interface. Only
// the sweep mechanics live here; the fitting routines being scored remain
// external.
package tuning

import (
	"fmt"
	"sort"
	"strings"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
)

// Point is one hyperparameter combination, mapping axis names to values.
type Point map[string]float64

// String renders the point as sorted "name=value" pairs for logging.
func (p Point) String() string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%g", name, p[name])
	}
	return strings.Join(parts, " ")
}

// Grid is a Cartesian product of named numeric axes. Axis insertion order is
// preserved so Points enumerates combinations deterministically.
type Grid struct {
	names  []string
	values map[string][]float64
}

// NewGrid returns an empty grid. A sweep over an empty grid evaluates a
// single empty point, i.e. the model's configured defaults.
func NewGrid() *Grid {
	return &Grid{values: make(map[string][]float64)}
}

// Add appends an axis. Re-adding a name replaces its values.
func (g *Grid) Add(name string, values ...float64) *Grid {
	if _, exists := g.values[name]; !exists {
		g.names = append(g.names, name)
	}
	g.values[name] = values
	return g
}

// Size returns the number of points in the product.
func (g *Grid) Size() int {
	size := 1
	for _, name := range g.names {
		size *= len(g.values[name])
	}
	return size
}

// Points enumerates the Cartesian product in deterministic order: the last
// added axis varies fastest. An axis with no values is a ConfigError.
func (g *Grid) Points() ([]Point, error) {
	for _, name := range g.names {
		if len(g.values[name]) == 0 {
			return nil, errors.NewConfigError("grid", "axis '"+name+"' has no values", nil)
		}
	}

	points := []Point{{}}
	for _, name := range g.names {
		var next []Point
		for _, p := range points {
			for _, v := range g.values[name] {
				np := make(Point, len(p)+1)
				for k, pv := range p {
					np[k] = pv
				}
				np[name] = v
				next = append(next, np)
			}
		}
		points = next
	}
	return points, nil
}
