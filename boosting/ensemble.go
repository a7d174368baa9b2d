package boosting

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gboost/pkg/errors"
)

// OutputType tags the kind of value a fitted problem produces.
type OutputType string

const (
	// Regression outputs raw additive scores.
	Regression OutputType = "regression"
	// Classification inverts the link and thresholds to a binary label.
	Classification OutputType = "classification"
)

// Ensemble is a fitted stage-wise additive model. It is immutable once
// produced and safe for concurrent prediction from multiple readers.
type Ensemble struct {
	InitScore    float64
	Stages       []Stage
	LearningRate float64
	Output       OutputType
	NumFeatures  int
}

// DecisionScores returns the raw additive score
// initScore + learningRate * Σ stage(x) for each row of X.
func (e *Ensemble) DecisionScores(X mat.Matrix) ([]float64, error) {
	n, cols := X.Dims()
	if cols != e.NumFeatures {
		return nil, errors.NewDimensionError("Ensemble.DecisionScores", e.NumFeatures, cols, 1)
	}

	dense, isDense := X.(*mat.Dense)
	buf := make([]float64, cols)

	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		row := buf
		if isDense {
			row = dense.RawRowView(i)
		} else {
			for j := 0; j < cols; j++ {
				buf[j] = X.At(i, j)
			}
		}

		var sum float64
		for _, stage := range e.Stages {
			sum += stage.PredictRow(row)
		}
		scores[i] = e.InitScore + e.LearningRate*sum
	}
	return scores, nil
}

// Predict returns the output vector for X: raw scores for regression, and
// for classification the sigmoid-inverted probability thresholded at 0.5
// into labels in {0, 1}.
func (e *Ensemble) Predict(X mat.Matrix) ([]float64, error) {
	scores, err := e.DecisionScores(X)
	if err != nil {
		return nil, err
	}
	if e.Output != Classification {
		return scores, nil
	}

	for i, s := range scores {
		if sigmoid(s) >= 0.5 {
			scores[i] = 1
		} else {
			scores[i] = 0
		}
	}
	return scores, nil
}

// PredictProba returns the positive-class probability for each row. Only
// valid for classification ensembles.
func (e *Ensemble) PredictProba(X mat.Matrix) ([]float64, error) {
	if e.Output != Classification {
		return nil, errors.NewModelError("Ensemble.PredictProba", "not a classification ensemble", nil)
	}
	scores, err := e.DecisionScores(X)
	if err != nil {
		return nil, err
	}
	for i, s := range scores {
		scores[i] = sigmoid(s)
	}
	return scores, nil
}
