package ml

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler standardizes each feature to zero mean and unit variance.
// It is fit on training rows only; applying it at inference reuses the
// training-time statistics, never refits.
type StandardScaler struct {
	Means  []float64 `json:"means"`
	Stds   []float64 `json:"stds"`
	Fitted bool      `json:"fitted"`
}

func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes per-column mean and standard deviation. Columns with zero
// variance get std 1 so Transform stays finite.
func (s *StandardScaler) Fit(rows [][]float64) error {
	if len(rows) == 0 {
		return fmt.Errorf("scaler fit: no rows")
	}
	width := len(rows[0])
	s.Means = make([]float64, width)
	s.Stds = make([]float64, width)

	column := make([]float64, len(rows))
	for j := 0; j < width; j++ {
		for i, row := range rows {
			if len(row) != width {
				return fmt.Errorf("scaler fit: row %d has %d values, want %d", i, len(row), width)
			}
			column[i] = row[j]
		}
		mean, std := stat.MeanStdDev(column, nil)
		if std == 0 || len(rows) < 2 {
			std = 1
		}
		s.Means[j] = mean
		s.Stds[j] = std
	}
	s.Fitted = true
	return nil
}

// Transform scales one row using the fitted statistics.
func (s *StandardScaler) Transform(row []float64) ([]float64, error) {
	if !s.Fitted {
		return nil, fmt.Errorf("scaler transform: not fitted")
	}
	if len(row) != len(s.Means) {
		return nil, fmt.Errorf("scaler transform: row has %d values, want %d", len(row), len(s.Means))
	}
	scaled := make([]float64, len(row))
	for j, v := range row {
		scaled[j] = (v - s.Means[j]) / s.Stds[j]
	}
	return scaled, nil
}

// TransformAll scales a batch of rows.
func (s *StandardScaler) TransformAll(rows [][]float64) ([][]float64, error) {
	scaled := make([][]float64, len(rows))
	for i, row := range rows {
		out, err := s.Transform(row)
		if err != nil {
			return nil, err
		}
		scaled[i] = out
	}
	return scaled, nil
}
