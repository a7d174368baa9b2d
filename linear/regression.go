// Package linear provides an ordinary least-squares regression model. It
// doubles as the default linear-model capability injected into the boosting
// driver.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gboost/core/model"
	"github.com/YuminosukeSato/gboost/core/parallel"
	"github.com/YuminosukeSato/gboost/pkg/errors"
)

// Regression is a linear regression model fitted with the normal equations
// w = (XᵀX)⁻¹ Xᵀy.
type Regression struct {
	model.BaseEstimator

	weights   *mat.VecDense
	intercept float64
	nFeatures int
}

// NewRegression creates an unfitted linear regression model.
func NewRegression() *Regression {
	return &Regression{}
}

// Fit learns the weights and intercept from the training data. y must be an
// n×1 column.
func (r *Regression) Fit(X, y mat.Matrix) error {
	n, c := X.Dims()
	ny, cy := y.Dims()

	if n == 0 || c == 0 {
		return errors.NewModelError("Regression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ny != n {
		return errors.NewDimensionError("Regression.Fit", n, ny, 0)
	}
	if cy != 1 {
		return errors.NewDimensionError("Regression.Fit", 1, cy, 1)
	}

	r.nFeatures = c

	// Prepend a column of ones for the intercept term.
	const parallelThreshold = 1000
	augmented := mat.NewDense(n, c+1, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			augmented.Set(i, 0, 1)
			for j := 0; j < c; j++ {
				augmented.Set(i, j+1, X.At(i, j))
			}
		}
	})

	var xt mat.Dense
	xt.CloneFrom(augmented.T())

	var xtx mat.Dense
	xtx.Mul(&xt, augmented)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return errors.NewModelError("Regression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	yVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var xty mat.VecDense
	xty.MulVec(&xt, yVec)

	solved := mat.NewVecDense(c+1, nil)
	solved.MulVec(&xtxInv, &xty)

	r.intercept = solved.AtVec(0)
	r.weights = mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		r.weights.SetVec(j, solved.AtVec(j+1))
	}

	r.SetFitted()
	return nil
}

// Predict returns an n×1 column of predictions.
func (r *Regression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Regression", "Predict")
	}

	n, c := X.Dims()
	if c != r.nFeatures {
		return nil, errors.NewDimensionError("Regression.Predict", r.nFeatures, c, 1)
	}

	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		pred := r.intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * r.weights.AtVec(j)
		}
		out.Set(i, 0, pred)
	}
	return out, nil
}

// PredictRow returns the prediction for a single feature row. It assumes the
// model is fitted and the row has the training width; the boosting driver
// guarantees both.
func (r *Regression) PredictRow(x []float64) float64 {
	pred := r.intercept
	for j := 0; j < r.weights.Len(); j++ {
		pred += x[j] * r.weights.AtVec(j)
	}
	return pred
}

// Weights returns a copy of the learned coefficients.
func (r *Regression) Weights() []float64 {
	if r.weights == nil {
		return nil
	}
	out := make([]float64, r.weights.Len())
	for i := range out {
		out[i] = r.weights.AtVec(i)
	}
	return out
}

// Intercept returns the learned intercept.
func (r *Regression) Intercept() float64 {
	return r.intercept
}

// Score returns the coefficient of determination R² on the given data.
func (r *Regression) Score(X, y mat.Matrix) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("Regression", "Score")
	}

	pred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	n, _ := y.Dims()
	var yMean float64
	for i := 0; i < n; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(n)

	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrue := y.At(i, 0)
		yHat := pred.At(i, 0)
		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yHat) * (yTrue - yHat)
	}
	if tss == 0 {
		return 0, errors.NewDomainError("Regression.Score", "total sum of squares is zero")
	}
	return 1 - rss/tss, nil
}
