package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// defaultLambda is the ridge penalty. Any positive value keeps the normal
// equations solvable even when there are fewer training rows than features,
// which matters at the 10-row training floor.
const defaultLambda = 1.0

// RidgeModel is a ridge-regularized linear regression over scaled features.
// It is a plain serializable struct; inference is a dot product, so repeated
// predictions over the same inputs are bitwise identical.
type RidgeModel struct {
	Version      string    `json:"version"`
	Lambda       float64   `json:"lambda"`
	Intercept    float64   `json:"intercept"`
	Weights      []float64 `json:"weights"`
	FeatureNames []string  `json:"feature_names"`
}

// FitRidge solves (XᵀX + λI)w = Xᵀy with an intercept column. X must hold
// scaled features.
func FitRidge(x [][]float64, y []float64, lambda float64) (*RidgeModel, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("ridge fit: no rows")
	}
	if n != len(y) {
		return nil, fmt.Errorf("ridge fit: %d rows but %d labels", n, len(y))
	}
	width := len(x[0])
	if width == 0 {
		return nil, fmt.Errorf("ridge fit: empty feature rows")
	}
	if lambda <= 0 {
		lambda = defaultLambda
	}

	// Design matrix with a leading 1s column for the intercept.
	a := mat.NewDense(n, width+1, nil)
	for i, row := range x {
		if len(row) != width {
			return nil, fmt.Errorf("ridge fit: row %d has %d values, want %d", i, len(row), width)
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	yVec := mat.NewVecDense(n, y)

	var ata mat.Dense
	ata.Mul(a.T(), a)
	for j := 0; j < width+1; j++ {
		ata.Set(j, j, ata.At(j, j)+lambda)
	}

	var aty mat.VecDense
	aty.MulVec(a.T(), yVec)

	var w mat.VecDense
	if err := w.SolveVec(&ata, &aty); err != nil {
		return nil, fmt.Errorf("ridge fit: solving normal equations: %w", err)
	}

	weights := make([]float64, width)
	for j := 0; j < width; j++ {
		weights[j] = w.AtVec(j + 1)
	}
	return &RidgeModel{
		Lambda:       lambda,
		Intercept:    w.AtVec(0),
		Weights:      weights,
		FeatureNames: FeatureNames(),
	}, nil
}

// Predict evaluates the model on one scaled feature row.
func (m *RidgeModel) Predict(scaled []float64) (float64, error) {
	if len(scaled) != len(m.Weights) {
		return 0, fmt.Errorf("ridge predict: row has %d values, model expects %d", len(scaled), len(m.Weights))
	}
	out := m.Intercept
	for j, v := range scaled {
		out += m.Weights[j] * v
	}
	return out, nil
}
