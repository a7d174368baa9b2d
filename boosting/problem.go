package boosting

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gboost/pkg/errors"
	"github.com/YuminosukeSato/gboost/pkg/log"
)

// Problem is the externally visible fit/predict contract: a boosting
// configuration plus an output-type tag, and, once fitted, an Ensemble.
//
// Fit is a pure builder. It leaves the receiver untouched and returns a new
// fitted Problem, so a single configured Problem can be shared across
// concurrent experiments without aliasing hazards.
type Problem struct {
	cfg      Config
	output   OutputType
	ensemble *Ensemble
}

// NewRegressor creates an unfitted regression problem. Zero config fields
// are filled with defaults (squared-error loss, tree learner).
func NewRegressor(cfg Config) *Problem {
	return &Problem{cfg: cfg.withDefaults(Regression), output: Regression}
}

// NewClassifier creates an unfitted binary-classification problem. Zero
// config fields are filled with defaults (binomial-deviance loss, tree
// learner). Labels must be in {0, 1}.
func NewClassifier(cfg Config) *Problem {
	return &Problem{cfg: cfg.withDefaults(Classification), output: Classification}
}

// Output returns the problem's output type.
func (p *Problem) Output() OutputType {
	return p.output
}

// IsFitted reports whether the problem holds a fitted ensemble.
func (p *Problem) IsFitted() bool {
	return p.ensemble != nil
}

// Ensemble returns the fitted ensemble, or nil before fitting.
func (p *Problem) Ensemble() *Ensemble {
	return p.ensemble
}

// Fit validates the configuration and inputs, runs the boosting driver and
// returns a new fitted Problem. The receiver is not mutated. On error no
// partial ensemble is produced.
func (p *Problem) Fit(X mat.Matrix, y []float64) (*Problem, error) {
	if err := p.cfg.validate(p.output); err != nil {
		return nil, err
	}

	n, cols := X.Dims()
	if n == 0 || cols == 0 {
		return nil, errors.NewModelError("Problem.Fit", "empty data", errors.ErrEmptyData)
	}
	if len(y) != n {
		return nil, errors.NewDimensionError("Problem.Fit", n, len(y), 0)
	}
	if p.output == Classification {
		for i, label := range y {
			if label != 0 && label != 1 {
				return nil, errors.NewDomainError("Problem.Fit",
					fmt.Sprintf("classification labels must be 0 or 1, found %g at row %d", label, i))
			}
		}
	}

	tr, err := newTrainer(p.cfg, p.output)
	if err != nil {
		return nil, err
	}

	if p.cfg.Verbosity > 0 {
		logger := log.GetLoggerWithName("boosting.problem")
		logger.Info("training started",
			log.ModelNameKey, p.modelName(),
			log.OperationKey, "fit",
			log.SamplesKey, n,
			log.FeaturesKey, cols,
			log.LossKey, string(p.cfg.Loss),
			log.LearningRateKey, p.cfg.LearningRate,
			log.SeedKey, p.cfg.Seed,
		)
	}

	ensemble, err := tr.fit(toDense(X), y)
	if err != nil {
		return nil, err
	}

	if p.cfg.Verbosity > 0 {
		logger := log.GetLoggerWithName("boosting.problem")
		logger.Info("training finished",
			log.ModelNameKey, p.modelName(),
			log.IterationKey, len(ensemble.Stages),
		)
	}

	return &Problem{cfg: p.cfg, output: p.output, ensemble: ensemble}, nil
}

// Predict returns the output vector for X. It fails with a NotFittedError
// on an unfitted Problem and never mutates the ensemble.
func (p *Problem) Predict(X mat.Matrix) ([]float64, error) {
	if p.ensemble == nil {
		return nil, errors.NewNotFittedError(p.modelName(), "Predict")
	}
	return p.ensemble.Predict(X)
}

// PredictProba returns positive-class probabilities for a fitted
// classification problem.
func (p *Problem) PredictProba(X mat.Matrix) ([]float64, error) {
	if p.ensemble == nil {
		return nil, errors.NewNotFittedError(p.modelName(), "PredictProba")
	}
	return p.ensemble.PredictProba(X)
}

func (p *Problem) modelName() string {
	if p.output == Classification {
		return "GBClassifier"
	}
	return "GBRegressor"
}

func toDense(X mat.Matrix) *mat.Dense {
	if d, ok := X.(*mat.Dense); ok {
		return d
	}
	n, cols := X.Dims()
	d := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, X.At(i, j))
		}
	}
	return d
}
