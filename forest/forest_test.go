package forest

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
)

func separableData(rows, features int) (*mat.Dense, []int) {
	r := rand.New(rand.NewPCG(3, 3))
	X := mat.NewDense(rows, features, nil)
	y := make([]int, rows)
	for i := 0; i < rows; i++ {
		base := 2.0
		if i%2 == 1 {
			base = 20.0
			y[i] = 1
		}
		for j := 0; j < features; j++ {
			X.Set(i, j, base+r.Float64()*3)
		}
	}
	return X, y
}

func TestRandomForestFitPredict(t *testing.T) {
	X, y := separableData(80, 4)

	rf := New(100)
	if err := rf.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if !rf.IsFitted() {
		t.Fatal("model should report fitted after Fit")
	}

	preds, err := rf.Predict(X)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if len(preds) != 80 {
		t.Fatalf("len(preds) = %d, want 80", len(preds))
	}

	correct := 0
	for i, p := range preds {
		if p != 0 && p != 1 {
			t.Fatalf("prediction %d out of class range: %d", i, p)
		}
		if p == y[i] {
			correct++
		}
	}
	// 分離可能な訓練データに対するアンサンブルの訓練精度は高いはず
	if correct <= 60 {
		t.Errorf("training accuracy %d/80 unexpectedly low", correct)
	}
}

func TestRandomForestPredictProba(t *testing.T) {
	X, y := separableData(80, 4)

	rf := New(100)
	if err := rf.Fit(X, y); err != nil {
		t.Fatal(err)
	}

	proba, err := rf.PredictProba(X)
	if err != nil {
		t.Fatalf("PredictProba() error = %v", err)
	}
	rows, cols := proba.Dims()
	if rows != 80 || cols != 2 {
		t.Fatalf("proba dims = %dx%d, want 80x2", rows, cols)
	}

	for i := 0; i < rows; i++ {
		sum := 0.0
		for k := 0; k < cols; k++ {
			p := proba.At(i, k)
			if p < 0 || p > 1 {
				t.Fatalf("proba[%d,%d] = %v outside [0,1]", i, k, p)
			}
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("proba row %d sums to %v, want 1", i, sum)
		}
	}
}

func TestRandomForestFeatureImportance(t *testing.T) {
	X, y := separableData(80, 4)

	rf := New(100)
	if rf.FeatureImportance() != nil {
		t.Error("importance should be nil before fitting")
	}
	if err := rf.Fit(X, y); err != nil {
		t.Fatal(err)
	}

	imp := rf.FeatureImportance()
	if len(imp) != 4 {
		t.Fatalf("len(importance) = %d, want 4", len(imp))
	}
}

func TestRandomForestErrors(t *testing.T) {
	X, y := separableData(10, 2)

	t.Run("not fitted", func(t *testing.T) {
		rf := New(10)
		_, err := rf.Predict(X)
		var nfErr *errors.NotFittedError
		if !errors.As(err, &nfErr) {
			t.Fatalf("expected *NotFittedError, got %T: %v", err, err)
		}
	})

	t.Run("invalid ensemble size", func(t *testing.T) {
		rf := New(10)
		rf.Trees = 0
		err := rf.Fit(X, y)
		var cfgErr *errors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected *ConfigError, got %T: %v", err, err)
		}
	})

	t.Run("label length mismatch", func(t *testing.T) {
		rf := New(10)
		if err := rf.Fit(X, y[:5]); err == nil {
			t.Fatal("expected dimension error")
		}
	})

	t.Run("feature count mismatch", func(t *testing.T) {
		rf := New(10)
		if err := rf.Fit(X, y); err != nil {
			t.Fatal(err)
		}
		_, err := rf.Predict(mat.NewDense(1, 5, nil))
		var evalErr *errors.EvaluationError
		if !errors.As(err, &evalErr) {
			t.Fatalf("expected *EvaluationError, got %T: %v", err, err)
		}
	})
}

func TestNewDefaultTrees(t *testing.T) {
	if rf := New(0); rf.Trees != DefaultTrees {
		t.Errorf("New(0).Trees = %d, want %d", rf.Trees, DefaultTrees)
	}
	if rf := New(-5); rf.Trees != DefaultTrees {
		t.Errorf("New(-5).Trees = %d, want %d", rf.Trees, DefaultTrees)
	}
}
