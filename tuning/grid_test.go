package tuning

import (
	"testing"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
)

func TestGridPoints(t *testing.T) {
	g := NewGrid().
		Add("max_depth", 3, 6).
		Add("learning_rate", 0.3, 0.1, 0.03)

	if got := g.Size(); got != 6 {
		t.Fatalf("Size() = %d, want 6", got)
	}

	points, err := g.Points()
	if err != nil {
		t.Fatalf("Points() error = %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("len(points) = %d, want 6", len(points))
	}

	// 後から追加した軸が速く回る決定的な列挙順
	want := []Point{
		{"max_depth": 3, "learning_rate": 0.3},
		{"max_depth": 3, "learning_rate": 0.1},
		{"max_depth": 3, "learning_rate": 0.03},
		{"max_depth": 6, "learning_rate": 0.3},
		{"max_depth": 6, "learning_rate": 0.1},
		{"max_depth": 6, "learning_rate": 0.03},
	}
	for i, w := range want {
		for k, v := range w {
			if points[i][k] != v {
				t.Errorf("points[%d][%s] = %v, want %v", i, k, points[i][k], v)
			}
		}
	}
}

func TestGridEmptyEnumeratesDefaults(t *testing.T) {
	points, err := NewGrid().Points()
	if err != nil {
		t.Fatalf("Points() error = %v", err)
	}
	if len(points) != 1 || len(points[0]) != 0 {
		t.Errorf("empty grid should yield one empty point, got %v", points)
	}
}

func TestGridEmptyAxis(t *testing.T) {
	_, err := NewGrid().Add("trees").Points()
	if err == nil {
		t.Fatal("expected ConfigError for empty axis")
	}
	var cfgErr *errors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
}

func TestGridAddReplaces(t *testing.T) {
	g := NewGrid().Add("trees", 10, 20).Add("trees", 50)
	points, err := g.Points()
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 1 || points[0]["trees"] != 50 {
		t.Errorf("re-adding an axis should replace values, got %v", points)
	}
}

func TestPointString(t *testing.T) {
	p := Point{"num_leaves": 31, "learning_rate": 0.1}
	if got := p.String(); got != "learning_rate=0.1 num_leaves=31" {
		t.Errorf("String() = %q", got)
	}
}
