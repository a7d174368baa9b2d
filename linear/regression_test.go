package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	gberr "github.com/YuminosukeSato/gboost/pkg/errors"
)

func TestRegressionFitRecoversCoefficients(t *testing.T) {
	// y = 2*x0 - 3*x1 + 0.5, noise-free.
	X := mat.NewDense(6, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
		2, 1,
		1, 2,
	})
	y := mat.NewDense(6, 1, []float64{0.5, 2.5, -2.5, -0.5, 1.5, -3.5})

	reg := NewRegression()
	if err := reg.Fit(X, y); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	weights := reg.Weights()
	if math.Abs(weights[0]-2) > 1e-9 || math.Abs(weights[1]+3) > 1e-9 {
		t.Errorf("Weights() = %v, want [2, -3]", weights)
	}
	if math.Abs(reg.Intercept()-0.5) > 1e-9 {
		t.Errorf("Intercept() = %v, want 0.5", reg.Intercept())
	}
}

func TestRegressionPredictMatchesFitData(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{3, 5, 7, 9}) // y = 2x + 1

	reg := NewRegression()
	if err := reg.Fit(X, y); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	pred, err := reg.Predict(X)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	for i := 0; i < 4; i++ {
		if math.Abs(pred.At(i, 0)-y.At(i, 0)) > 1e-9 {
			t.Errorf("Predict row %d = %v, want %v", i, pred.At(i, 0), y.At(i, 0))
		}
	}

	// PredictRow must agree with Predict.
	if got := reg.PredictRow([]float64{2.5}); math.Abs(got-6) > 1e-9 {
		t.Errorf("PredictRow(2.5) = %v, want 6", got)
	}
}

func TestRegressionPredictBeforeFit(t *testing.T) {
	reg := NewRegression()
	_, err := reg.Predict(mat.NewDense(1, 1, []float64{1}))

	var notFitted *gberr.NotFittedError
	if !gberr.As(err, &notFitted) {
		t.Errorf("Predict() error = %v, want *NotFittedError", err)
	}
}

func TestRegressionFitValidation(t *testing.T) {
	tests := []struct {
		name string
		X    *mat.Dense
		y    *mat.Dense
	}{
		{
			name: "row count mismatch",
			X:    mat.NewDense(3, 1, []float64{1, 2, 3}),
			y:    mat.NewDense(2, 1, []float64{1, 2}),
		},
		{
			name: "y not a column",
			X:    mat.NewDense(2, 1, []float64{1, 2}),
			y:    mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewRegression().Fit(tt.X, tt.y); err == nil {
				t.Error("Fit() should fail")
			}
		})
	}
}

func TestRegressionScore(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	y := mat.NewDense(5, 1, []float64{2, 4, 6, 8, 10})

	reg := NewRegression()
	if err := reg.Fit(X, y); err != nil {
		t.Fatalf("Fit() error: %v", err)
	}

	r2, err := reg.Score(X, y)
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}
	if math.Abs(r2-1) > 1e-9 {
		t.Errorf("Score() = %v, want 1 for a perfect fit", r2)
	}
}
