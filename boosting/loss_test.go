package boosting

import (
	"math"
	"testing"

	gberr "github.com/YuminosukeSato/gboost/pkg/errors"
)

func TestNewLossUnknownKind(t *testing.T) {
	if _, err := NewLoss("hinge"); err == nil {
		t.Fatal("NewLoss should reject an unknown kind")
	}
}

func TestInitScore(t *testing.T) {
	tests := []struct {
		name      string
		kind      LossKind
		targets   []float64
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "squared error returns the mean",
			kind:      SquaredError,
			targets:   []float64{1, 2, 3, 4},
			want:      2.5,
			tolerance: 1e-12,
		},
		{
			name:      "absolute deviation returns the median (odd)",
			kind:      AbsoluteDeviation,
			targets:   []float64{5, 1, 9},
			want:      5,
			tolerance: 1e-12,
		},
		{
			name:      "absolute deviation returns the median (even)",
			kind:      AbsoluteDeviation,
			targets:   []float64{4, 1, 2, 3},
			want:      2.5,
			tolerance: 1e-12,
		},
		{
			name:      "binomial deviance returns the log-odds",
			kind:      BinomialDeviance,
			targets:   []float64{1, 1, 1, 0},
			want:      math.Log(0.75 / 0.25),
			tolerance: 1e-12,
		},
		{
			name:    "binomial deviance fails on all positives",
			kind:    BinomialDeviance,
			targets: []float64{1, 1, 1},
			wantErr: true,
		},
		{
			name:    "binomial deviance fails on all negatives",
			kind:    BinomialDeviance,
			targets: []float64{0, 0},
			wantErr: true,
		},
		{
			name:    "empty targets fail",
			kind:    SquaredError,
			targets: nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loss, err := NewLoss(tt.kind)
			if err != nil {
				t.Fatalf("NewLoss(%s) error: %v", tt.kind, err)
			}

			got, err := loss.InitScore(tt.targets)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitScore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("InitScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitScoreOneClassIsDomainError(t *testing.T) {
	loss, _ := NewLoss(BinomialDeviance)
	_, err := loss.InitScore([]float64{1, 1, 1})
	var domErr *gberr.DomainError
	if !gberr.As(err, &domErr) {
		t.Fatalf("error = %v, want *DomainError", err)
	}
}

func TestPseudoResidual(t *testing.T) {
	tests := []struct {
		name      string
		kind      LossKind
		target    float64
		score     float64
		want      float64
		tolerance float64
	}{
		{name: "squared error is target minus score", kind: SquaredError, target: 3, score: 1.5, want: 1.5, tolerance: 1e-12},
		{name: "absolute deviation positive sign", kind: AbsoluteDeviation, target: 2, score: 1, want: 1, tolerance: 0},
		{name: "absolute deviation negative sign", kind: AbsoluteDeviation, target: 1, score: 2, want: -1, tolerance: 0},
		{name: "absolute deviation zero at equality", kind: AbsoluteDeviation, target: 2, score: 2, want: 0, tolerance: 0},
		{name: "binomial deviance at zero score", kind: BinomialDeviance, target: 1, score: 0, want: 0.5, tolerance: 1e-12},
		{name: "binomial deviance negative class", kind: BinomialDeviance, target: 0, score: 0, want: -0.5, tolerance: 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loss, err := NewLoss(tt.kind)
			if err != nil {
				t.Fatalf("NewLoss(%s) error: %v", tt.kind, err)
			}
			got := loss.PseudoResidual(tt.target, tt.score)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("PseudoResidual(%g, %g) = %v, want %v", tt.target, tt.score, got, tt.want)
			}
		})
	}
}

func TestRegionValueSquaredErrorIsResidualMean(t *testing.T) {
	loss, _ := NewLoss(SquaredError)
	got := loss.RegionValue([]float64{1, 2, 3}, nil, nil)
	if math.Abs(got-2) > 1e-12 {
		t.Errorf("RegionValue = %v, want 2", got)
	}
}

func TestRegionValueAbsoluteDeviationIsResidualMedian(t *testing.T) {
	loss, _ := NewLoss(AbsoluteDeviation)
	// Region value is the median of target-score differences.
	targets := []float64{5, 1, 4}
	scores := []float64{1, 1, 1}
	got := loss.RegionValue(nil, targets, scores)
	if math.Abs(got-3) > 1e-12 {
		t.Errorf("RegionValue = %v, want 3", got)
	}
}

func TestRegionValueBinomialDevianceNewtonStep(t *testing.T) {
	loss, _ := NewLoss(BinomialDeviance)

	// At score 0 the sigmoid weight is 0.25 per row, so the step is
	// sum(r) / (0.25 * n).
	residuals := []float64{0.5, 0.5, -0.5, 0.5}
	scores := []float64{0, 0, 0, 0}
	got := loss.RegionValue(residuals, nil, scores)
	want := 1.0 / (0.25 * 4)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("RegionValue = %v, want %v", got, want)
	}
}

func TestRegionValueSaturatedRegionStaysFinite(t *testing.T) {
	loss, _ := NewLoss(BinomialDeviance)

	// Extreme scores drive the hessian to zero; the floor must keep the
	// step finite.
	residuals := []float64{1e-9, 1e-9}
	scores := []float64{50, 50}
	got := loss.RegionValue(residuals, nil, scores)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("RegionValue = %v, want finite", got)
	}
}

func TestRegionValueEmptyRegion(t *testing.T) {
	for _, kind := range []LossKind{SquaredError, AbsoluteDeviation, BinomialDeviance} {
		loss, _ := NewLoss(kind)
		if got := loss.RegionValue(nil, nil, nil); got != 0 {
			t.Errorf("%s: RegionValue(empty) = %v, want 0", kind, got)
		}
	}
}
