package boosting

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gboost/pkg/errors"
	"github.com/YuminosukeSato/gboost/pkg/log"
)

// Config holds the boosting hyperparameters. Zero values are replaced with
// defaults when the Problem is constructed; the populated configuration is
// validated eagerly, before any fitting work starts.
type Config struct {
	// Loss selects the loss function. Defaults to SquaredError for
	// regression and BinomialDeviance for classification.
	Loss LossKind

	// SamplingRate is the fraction of rows each stage trains on, in
	// (0, 1]. With 1 every stage sees all rows and fitting is fully
	// deterministic. Defaults to 1.
	SamplingRate float64

	// LearningRate is the shrinkage applied to every stage's
	// contribution, in (0, 1]. Defaults to 0.1.
	LearningRate float64

	// NumIterations is the number of boosting stages. Defaults to 100.
	NumIterations int

	// BaseLearner selects the weak learner. Defaults to TreeLearner.
	BaseLearner LearnerKind

	// Tree growth limits, used only by TreeLearner.
	MaxDepth    int     // default 3
	MinLeafSize int     // default 5
	VarianceTol float64 // default 1e-12

	// LinearFitter is the injected linear-regression capability for
	// LinearLearner. Defaults to DefaultLinearFitter.
	LinearFitter LinearFitter

	// Seed drives the subsampling random source. Fits with the same seed
	// and data are reproducible.
	Seed int64

	// Verbosity enables progress logging when positive.
	Verbosity int
}

func (c Config) withDefaults(output OutputType) Config {
	if c.Loss == "" {
		if output == Classification {
			c.Loss = BinomialDeviance
		} else {
			c.Loss = SquaredError
		}
	}
	if c.SamplingRate == 0 {
		c.SamplingRate = 1
	}
	if c.LearningRate == 0 {
		c.LearningRate = 0.1
	}
	if c.NumIterations == 0 {
		c.NumIterations = 100
	}
	if c.BaseLearner == "" {
		c.BaseLearner = TreeLearner
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = 3
	}
	if c.MinLeafSize == 0 {
		c.MinLeafSize = 5
	}
	if c.VarianceTol == 0 {
		c.VarianceTol = 1e-12
	}
	return c
}

func (c Config) validate(output OutputType) error {
	if c.SamplingRate <= 0 || c.SamplingRate > 1 {
		return errors.NewHyperparameterError("sampling_rate", "must be in (0, 1]", c.SamplingRate)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return errors.NewHyperparameterError("learning_rate", "must be in (0, 1]", c.LearningRate)
	}
	if c.NumIterations <= 0 {
		return errors.NewHyperparameterError("num_iterations", "must be positive", c.NumIterations)
	}
	if output == Classification && c.Loss != BinomialDeviance {
		return errors.NewIncompatibleLossError(string(c.Loss), string(output))
	}
	if output == Regression && c.Loss == BinomialDeviance {
		return errors.NewIncompatibleLossError(string(c.Loss), string(output))
	}
	return nil
}

// trainer runs the stage-wise additive fitting loop.
type trainer struct {
	cfg     Config
	output  OutputType
	loss    Loss
	learner BaseLearner
	rng     *rand.Rand
	logger  log.Logger
}

func newTrainer(cfg Config, output OutputType) (*trainer, error) {
	loss, err := NewLoss(cfg.Loss)
	if err != nil {
		return nil, err
	}
	learner, err := newBaseLearner(cfg)
	if err != nil {
		return nil, err
	}
	return &trainer{
		cfg:     cfg,
		output:  output,
		loss:    loss,
		learner: learner,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		logger:  log.GetLoggerWithName("boosting.trainer"),
	}, nil
}

// fit produces the ensemble. Stages are strictly sequential: each stage's
// training target depends on the cumulative score after the previous one.
func (t *trainer) fit(X *mat.Dense, y []float64) (*Ensemble, error) {
	n, cols := X.Dims()

	initScore, err := t.loss.InitScore(y)
	if err != nil {
		return nil, err
	}

	f := make([]float64, n)
	for i := range f {
		f[i] = initScore
	}

	stages := make([]Stage, 0, t.cfg.NumIterations)
	for iter := 0; iter < t.cfg.NumIterations; iter++ {
		rows := t.sampleRows(n)

		residuals := make([]float64, len(rows))
		for i, r := range rows {
			residuals[i] = t.loss.PseudoResidual(y[r], f[r])
		}

		stage, err := t.learner.FitStage(X, rows, residuals)
		if err != nil {
			return nil, errors.Wrapf(err, "fitting stage %d", iter)
		}

		if rl, ok := stage.(regionLearner); ok {
			t.refitRegions(rl, y, f)
		}

		// Update every row, not only the sampled subset, so later
		// stages see the cumulative effect of this one.
		for i := 0; i < n; i++ {
			f[i] += t.cfg.LearningRate * stage.PredictRow(X.RawRowView(i))
		}
		stages = append(stages, stage)

		if t.cfg.Verbosity > 0 && iter%10 == 0 {
			t.logger.Debug("training progress",
				log.IterationKey, iter,
				log.SamplesKey, len(rows),
			)
		}
	}

	return &Ensemble{
		InitScore:    initScore,
		Stages:       stages,
		LearningRate: t.cfg.LearningRate,
		Output:       t.output,
		NumFeatures:  cols,
	}, nil
}

// refitRegions replaces each leaf's naive residual mean with the
// loss-specific region value. Squared error is the fixed point of this
// substitution.
func (t *trainer) refitRegions(rl regionLearner, y, f []float64) {
	for k, region := range rl.Regions() {
		residuals := make([]float64, len(region))
		targets := make([]float64, len(region))
		scores := make([]float64, len(region))
		for i, r := range region {
			residuals[i] = t.loss.PseudoResidual(y[r], f[r])
			targets[i] = y[r]
			scores[i] = f[r]
		}
		rl.SetRegionValue(k, t.loss.RegionValue(residuals, targets, scores))
	}
}

// sampleRows draws round(samplingRate*n) distinct rows uniformly at random,
// or every row when the rate is 1.
func (t *trainer) sampleRows(n int) []int {
	if t.cfg.SamplingRate >= 1 {
		rows := make([]int, n)
		for i := range rows {
			rows[i] = i
		}
		return rows
	}

	k := int(math.Round(t.cfg.SamplingRate * float64(n)))
	if k < 1 {
		k = 1
	}
	rows := append([]int(nil), t.rng.Perm(n)[:k]...)
	sort.Ints(rows)
	return rows
}
