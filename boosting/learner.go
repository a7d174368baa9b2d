package boosting

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gboost/linear"
	"github.com/YuminosukeSato/gboost/pkg/errors"
)

// Stage is one fitted weak learner in the ensemble. The driver needs
// nothing from a stage beyond row prediction.
type Stage interface {
	PredictRow(x []float64) float64
}

// BaseLearner fits a weak model mapping instances to a scalar, given the
// sampled rows and their pseudo-residual targets (indexed in parallel).
type BaseLearner interface {
	FitStage(X *mat.Dense, rows []int, residuals []float64) (Stage, error)
}

// regionLearner is implemented by stages with leaf regions whose values the
// driver overwrites with the loss-specific region value. Trees implement
// it; linear stages do not.
type regionLearner interface {
	Regions() [][]int
	SetRegionValue(k int, v float64)
}

// LearnerKind selects the base learner variant.
type LearnerKind string

const (
	// TreeLearner fits fixed-depth regression trees.
	TreeLearner LearnerKind = "tree"
	// LinearLearner fits an injected linear model.
	LinearLearner LearnerKind = "linear"
)

// LinearFitter is the injected linear-regression capability: it fits a model
// on the given instances and targets and returns it as a predicting Stage.
type LinearFitter func(X *mat.Dense, targets []float64) (Stage, error)

// linearLearner adapts a LinearFitter to the BaseLearner contract. It
// performs no leaf-region reinterpretation; linear models have no regions.
type linearLearner struct {
	fit LinearFitter
}

func (l *linearLearner) FitStage(X *mat.Dense, rows []int, residuals []float64) (Stage, error) {
	if len(rows) == 0 {
		return nil, errors.NewModelError("LinearStage.Fit", "empty row subset", errors.ErrEmptyData)
	}
	if len(rows) != len(residuals) {
		return nil, errors.NewDimensionError("LinearStage.Fit", len(rows), len(residuals), 0)
	}
	return l.fit(selectRows(X, rows), residuals)
}

// DefaultLinearFitter fits a least-squares regression from the linear
// package. It is the LinearFitter used when the configuration does not
// inject one.
func DefaultLinearFitter(X *mat.Dense, targets []float64) (Stage, error) {
	reg := linear.NewRegression()
	y := mat.NewDense(len(targets), 1, targets)
	if err := reg.Fit(X, y); err != nil {
		return nil, errors.Wrap(err, "linear stage fit")
	}
	return reg, nil
}

func newBaseLearner(cfg Config) (BaseLearner, error) {
	switch cfg.BaseLearner {
	case TreeLearner, "":
		return &treeLearner{params: TreeParams{
			MaxDepth:    cfg.MaxDepth,
			MinLeafSize: cfg.MinLeafSize,
			VarianceTol: cfg.VarianceTol,
		}}, nil
	case LinearLearner:
		fit := cfg.LinearFitter
		if fit == nil {
			fit = DefaultLinearFitter
		}
		return &linearLearner{fit: fit}, nil
	default:
		return nil, errors.NewHyperparameterError("base_learner", "unknown learner kind", string(cfg.BaseLearner))
	}
}

// selectRows copies the given rows of X into a new dense matrix.
func selectRows(X *mat.Dense, rows []int) *mat.Dense {
	_, cols := X.Dims()
	sub := mat.NewDense(len(rows), cols, nil)
	for i, r := range rows {
		sub.SetRow(i, X.RawRowView(r))
	}
	return sub
}
