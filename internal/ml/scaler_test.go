package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalerFitAndTransform(t *testing.T) {
	scaler := NewStandardScaler()
	rows := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	}
	require.NoError(t, scaler.Fit(rows))
	require.True(t, scaler.Fitted)

	scaled, err := scaler.Transform([]float64{2, 20})
	require.NoError(t, err)
	// The column means are exactly the input, so the scaled row is all zeros.
	assert.InDelta(t, 0, scaled[0], 1e-12)
	assert.InDelta(t, 0, scaled[1], 1e-12)
}

func TestScalerZeroVarianceColumn(t *testing.T) {
	scaler := NewStandardScaler()
	rows := [][]float64{
		{5, 1},
		{5, 2},
		{5, 3},
	}
	require.NoError(t, scaler.Fit(rows))

	scaled, err := scaler.Transform([]float64{5, 2})
	require.NoError(t, err)
	// Constant column: std forced to 1, so the value stays finite and zero.
	assert.InDelta(t, 0, scaled[0], 1e-12)
}

func TestScalerTransformBeforeFit(t *testing.T) {
	scaler := NewStandardScaler()
	_, err := scaler.Transform([]float64{1, 2})
	assert.Error(t, err)
}

func TestScalerWidthMismatch(t *testing.T) {
	scaler := NewStandardScaler()
	require.NoError(t, scaler.Fit([][]float64{{1, 2}, {3, 4}}))

	_, err := scaler.Transform([]float64{1})
	assert.Error(t, err)
}

func TestScalerFitEmpty(t *testing.T) {
	scaler := NewStandardScaler()
	assert.Error(t, scaler.Fit(nil))
}
