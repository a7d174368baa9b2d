// Package preprocessing provides feature transformations applied before
// fitting.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gboost/core/model"
	"github.com/YuminosukeSato/gboost/pkg/errors"
)

// StandardScaler standardizes features to zero mean and unit variance.
// Columns with zero variance are left centered but unscaled.
type StandardScaler struct {
	model.BaseEstimator

	mean []float64
	std  []float64
}

// NewStandardScaler creates an unfitted StandardScaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit learns the per-column mean and standard deviation.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	n, cols := X.Dims()
	if n == 0 || cols == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	s.mean = make([]float64, cols)
	s.std = make([]float64, cols)

	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < n; i++ {
			sum += X.At(i, j)
		}
		s.mean[j] = sum / float64(n)

		var sqSum float64
		for i := 0; i < n; i++ {
			d := X.At(i, j) - s.mean[j]
			sqSum += d * d
		}
		s.std[j] = math.Sqrt(sqSum / float64(n))
		if s.std[j] == 0 {
			s.std[j] = 1
		}
	}

	s.SetFitted()
	return nil
}

// Transform returns a standardized copy of X.
func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}

	n, cols := X.Dims()
	if cols != len(s.mean) {
		return nil, errors.NewDimensionError("StandardScaler.Transform", len(s.mean), cols, 1)
	}

	out := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, (X.At(i, j)-s.mean[j])/s.std[j])
		}
	}
	return out, nil
}

// FitTransform fits the scaler and transforms X in one call.
func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
