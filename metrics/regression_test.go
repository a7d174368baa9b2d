package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(5, []float64{1, 2, 3, 4, 5}),
			yPred:     mat.NewVecDense(5, []float64{1, 2, 3, 4, 5}),
			want:      0,
			tolerance: 1e-10,
		},
		{
			name:      "simple case",
			yTrue:     mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			yPred:     mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5}),
			want:      0.25,
			tolerance: 1e-10,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:   mat.NewVecDense(2, []float64{1, 2}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MSE() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MSE() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRMSE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, 2, 3, 4})
	yPred := mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5})

	got, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatalf("RMSE() error: %v", err)
	}
	if want := 0.5; math.Abs(got-want) > 1e-10 {
		t.Errorf("RMSE() = %v, want %v", got, want)
	}
}

func TestMAE(t *testing.T) {
	yTrue := mat.NewVecDense(3, []float64{10, 20, 30})
	yPred := mat.NewVecDense(3, []float64{12, 18, 33})

	got, err := MAE(yTrue, yPred)
	if err != nil {
		t.Fatalf("MAE() error: %v", err)
	}
	if want := 7.0 / 3.0; math.Abs(got-want) > 1e-10 {
		t.Errorf("MAE() = %v, want %v", got, want)
	}
}

func TestR2Score(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	perfect, err := R2Score(yTrue, mat.NewVecDense(4, []float64{1, 2, 3, 4}))
	if err != nil {
		t.Fatalf("R2Score() error: %v", err)
	}
	if math.Abs(perfect-1) > 1e-10 {
		t.Errorf("R2Score(perfect) = %v, want 1", perfect)
	}

	meanPred, err := R2Score(yTrue, mat.NewVecDense(4, []float64{2.5, 2.5, 2.5, 2.5}))
	if err != nil {
		t.Fatalf("R2Score() error: %v", err)
	}
	if math.Abs(meanPred) > 1e-10 {
		t.Errorf("R2Score(mean predictor) = %v, want 0", meanPred)
	}

	if _, err := R2Score(mat.NewVecDense(2, []float64{3, 3}), mat.NewVecDense(2, []float64{3, 3})); err == nil {
		t.Error("R2Score should fail when the total sum of squares is zero")
	}
}

func TestSliceMetricsAgreeWithVectorMetrics(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}
	yPred := []float64{1.5, 2.5, 2.5, 3.5}

	mseSlice, err := MSESlice(yTrue, yPred)
	if err != nil {
		t.Fatalf("MSESlice() error: %v", err)
	}
	mseVec, _ := MSE(mat.NewVecDense(4, yTrue), mat.NewVecDense(4, yPred))
	if math.Abs(mseSlice-mseVec) > 1e-12 {
		t.Errorf("MSESlice = %v, MSE = %v, want equal", mseSlice, mseVec)
	}

	maeSlice, err := MAESlice(yTrue, yPred)
	if err != nil {
		t.Fatalf("MAESlice() error: %v", err)
	}
	maeVec, _ := MAE(mat.NewVecDense(4, yTrue), mat.NewVecDense(4, yPred))
	if math.Abs(maeSlice-maeVec) > 1e-12 {
		t.Errorf("MAESlice = %v, MAE = %v, want equal", maeSlice, maeVec)
	}
}
