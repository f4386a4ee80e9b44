package boost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
)

func separableData(rows, features int) (*mat.Dense, []int) {
	X := mat.NewDense(rows, features, nil)
	y := make([]int, rows)
	for i := 0; i < rows; i++ {
		base := 1.0
		if i >= rows/2 {
			base = 10.0
			y[i] = 1
		}
		for j := 0; j < features; j++ {
			X.Set(i, j, base+float64((i*7+j*3)%5))
		}
	}
	return X, y
}

func TestGradientBoostingFitPredict(t *testing.T) {
	X, y := separableData(100, 4)

	gb := New()
	gb.NumIterations = 20
	gb.Seed = 42

	err := gb.Fit(X, y)
	require.NoError(t, err)
	assert.True(t, gb.IsFitted())

	preds, err := gb.Predict(X)
	require.NoError(t, err)
	require.Len(t, preds, 100)

	for _, p := range preds {
		assert.True(t, p == 0 || p == 1, "prediction out of class range: %d", p)
	}
}

func TestGradientBoostingPredictProba(t *testing.T) {
	X, y := separableData(100, 4)

	gb := New()
	gb.NumIterations = 20

	require.NoError(t, gb.Fit(X, y))

	proba, err := gb.PredictProba(X)
	require.NoError(t, err)

	rows, cols := proba.Dims()
	assert.Equal(t, 100, rows)
	assert.Equal(t, 2, cols)

	for i := 0; i < rows; i++ {
		sum := 0.0
		for k := 0; k < cols; k++ {
			p := proba.At(i, k)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-6)
	}
}

func TestGradientBoostingFeatureImportance(t *testing.T) {
	X, y := separableData(100, 4)

	gb := New()
	gb.NumIterations = 20

	assert.Nil(t, gb.FeatureImportance())

	require.NoError(t, gb.Fit(X, y))

	imp := gb.FeatureImportance()
	require.Len(t, imp, 4)
	for j, v := range imp {
		assert.GreaterOrEqual(t, v, 0.0, "importance[%d] must be non-negative", j)
	}
}

func TestGradientBoostingErrors(t *testing.T) {
	X, y := separableData(20, 3)

	t.Run("not fitted", func(t *testing.T) {
		gb := New()
		_, err := gb.Predict(X)
		var nfErr *errors.NotFittedError
		require.True(t, errors.As(err, &nfErr), "expected NotFittedError, got %v", err)
	})

	t.Run("invalid iterations", func(t *testing.T) {
		gb := New()
		gb.NumIterations = 0
		err := gb.Fit(X, y)
		var cfgErr *errors.ConfigError
		require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
	})

	t.Run("invalid learning rate", func(t *testing.T) {
		gb := New()
		gb.LearningRate = -0.1
		err := gb.Fit(X, y)
		var cfgErr *errors.ConfigError
		require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
	})

	t.Run("label length mismatch", func(t *testing.T) {
		gb := New()
		require.Error(t, gb.Fit(X, y[:10]))
	})

	t.Run("feature count mismatch", func(t *testing.T) {
		gb := New()
		gb.NumIterations = 5
		require.NoError(t, gb.Fit(X, y))

		_, err := gb.Predict(mat.NewDense(1, 5, nil))
		var evalErr *errors.EvaluationError
		require.True(t, errors.As(err, &evalErr), "expected EvaluationError, got %v", err)
	})
}
