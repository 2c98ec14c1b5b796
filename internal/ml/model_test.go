package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitRidgeRecoversLinearTrend(t *testing.T) {
	// y = 2x + 5 with a single feature; ridge shrinks slightly but the fit
	// must stay close.
	x := [][]float64{{-2}, {-1}, {0}, {1}, {2}, {3}, {4}, {5}}
	y := make([]float64, len(x))
	for i, row := range x {
		y[i] = 2*row[0] + 5
	}

	model, err := FitRidge(x, y, 0.001)
	require.NoError(t, err)

	pred, err := model.Predict([]float64{2.5})
	require.NoError(t, err)
	assert.InDelta(t, 10, pred, 0.1)
}

func TestFitRidgeUnderdetermined(t *testing.T) {
	// Fewer rows than features. Plain least squares has no unique solution
	// here; the ridge penalty must still produce one.
	x := [][]float64{
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0},
	}
	y := []float64{1, 2, 3}

	model, err := FitRidge(x, y, 1.0)
	require.NoError(t, err)
	require.Len(t, model.Weights, 5)

	_, err = model.Predict([]float64{0.5, 0.5, 0.5, 0, 0})
	assert.NoError(t, err)
}

func TestPredictIsDeterministic(t *testing.T) {
	x := [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	y := []float64{10, 20, 30, 40}
	model, err := FitRidge(x, y, 1.0)
	require.NoError(t, err)

	first, err := model.Predict([]float64{2, 3})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := model.Predict([]float64{2, 3})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPredictWidthMismatch(t *testing.T) {
	model := &RidgeModel{Weights: []float64{1, 2, 3}}
	_, err := model.Predict([]float64{1})
	assert.Error(t, err)
}

func TestFitRidgeRejectsBadInput(t *testing.T) {
	_, err := FitRidge(nil, nil, 1.0)
	assert.Error(t, err)

	_, err = FitRidge([][]float64{{1}}, []float64{1, 2}, 1.0)
	assert.Error(t, err)
}
