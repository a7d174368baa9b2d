package boosting

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/gboost/pkg/errors"
)

// LossKind identifies one of the supported loss functions.
type LossKind string

const (
	// SquaredError is L2 regression loss.
	SquaredError LossKind = "squared_error"
	// AbsoluteDeviation is L1 regression loss.
	AbsoluteDeviation LossKind = "absolute_deviation"
	// BinomialDeviance is the binary-classification log loss over labels
	// in {0, 1}.
	BinomialDeviance LossKind = "binomial_deviance"
)

// Loss defines the three operations the boosting driver needs from a loss
// function. No other component depends on loss-specific internals.
type Loss interface {
	// InitScore returns the constant that minimizes the loss over the
	// targets, used as the ensemble's initial estimate.
	InitScore(targets []float64) (float64, error)

	// PseudoResidual returns the negative gradient of the loss with
	// respect to the current score for one instance.
	PseudoResidual(target, score float64) float64

	// RegionValue returns the optimal constant to add for a leaf region.
	// All three slices are indexed in parallel over the region's rows.
	RegionValue(residuals, targets, scores []float64) float64

	// Name returns the loss identifier.
	Name() string
}

// NewLoss returns the Loss implementation for kind.
func NewLoss(kind LossKind) (Loss, error) {
	switch kind {
	case SquaredError:
		return squaredErrorLoss{}, nil
	case AbsoluteDeviation:
		return absoluteDeviationLoss{}, nil
	case BinomialDeviance:
		return binomialDevianceLoss{}, nil
	default:
		return nil, errors.NewHyperparameterError("loss", "unknown loss kind", string(kind))
	}
}

// squaredErrorLoss implements L2 loss. Its initial estimate is the target
// mean and its region value is the residual mean, which makes the naive
// tree-leaf mean its fixed point.
type squaredErrorLoss struct{}

func (squaredErrorLoss) InitScore(targets []float64) (float64, error) {
	if len(targets) == 0 {
		return 0, errors.NewModelError("SquaredError.InitScore", "empty targets", errors.ErrEmptyData)
	}
	return stat.Mean(targets, nil), nil
}

func (squaredErrorLoss) PseudoResidual(target, score float64) float64 {
	return target - score
}

func (squaredErrorLoss) RegionValue(residuals, _, _ []float64) float64 {
	if len(residuals) == 0 {
		return 0
	}
	return stat.Mean(residuals, nil)
}

func (squaredErrorLoss) Name() string { return string(SquaredError) }

// absoluteDeviationLoss implements L1 loss. Its initial estimate is the
// target median; the leaf value is the median of the within-region
// residuals target-score, the constant that minimizes absolute deviation
// over the region.
type absoluteDeviationLoss struct{}

func (absoluteDeviationLoss) InitScore(targets []float64) (float64, error) {
	if len(targets) == 0 {
		return 0, errors.NewModelError("AbsoluteDeviation.InitScore", "empty targets", errors.ErrEmptyData)
	}
	return median(targets), nil
}

func (absoluteDeviationLoss) PseudoResidual(target, score float64) float64 {
	switch diff := target - score; {
	case diff > 0:
		return 1
	case diff < 0:
		return -1
	default:
		return 0
	}
}

func (absoluteDeviationLoss) RegionValue(_, targets, scores []float64) float64 {
	if len(targets) == 0 {
		return 0
	}
	diffs := make([]float64, len(targets))
	for i := range targets {
		diffs[i] = targets[i] - scores[i]
	}
	return median(diffs)
}

func (absoluteDeviationLoss) Name() string { return string(AbsoluteDeviation) }

// hessianFloor keeps the Newton step finite when every probability in a
// region saturates at 0 or 1.
const hessianFloor = 1e-10

// binomialDevianceLoss implements binary log loss over labels in {0, 1}.
type binomialDevianceLoss struct{}

func (binomialDevianceLoss) InitScore(targets []float64) (float64, error) {
	if len(targets) == 0 {
		return 0, errors.NewModelError("BinomialDeviance.InitScore", "empty targets", errors.ErrEmptyData)
	}
	prop := stat.Mean(targets, nil)
	if prop <= 0 || prop >= 1 {
		return 0, errors.NewDomainError("BinomialDeviance.InitScore",
			"log-odds undefined: all labels belong to one class")
	}
	return math.Log(prop / (1 - prop)), nil
}

func (binomialDevianceLoss) PseudoResidual(target, score float64) float64 {
	return target - sigmoid(score)
}

// RegionValue takes a single Newton step: the region's residual sum divided
// by the sigmoid-weighted variance sum.
func (binomialDevianceLoss) RegionValue(residuals, _, scores []float64) float64 {
	if len(residuals) == 0 {
		return 0
	}
	var num, denom float64
	for i, r := range residuals {
		p := sigmoid(scores[i])
		num += r
		denom += p * (1 - p)
	}
	if denom < hessianFloor {
		denom = hessianFloor
	}
	return num / denom
}

func (binomialDevianceLoss) Name() string { return string(BinomialDeviance) }

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
