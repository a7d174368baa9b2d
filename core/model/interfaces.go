package model

import "gonum.org/v1/gonum/mat"

// Fitter is implemented by models that learn from an instance matrix and a
// label column.
type Fitter interface {
	Fit(X, y mat.Matrix) error
}

// Predictor is implemented by fitted models that map instances to outputs.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is implemented by models that can evaluate themselves on held-out
// data; regression models return the coefficient of determination R².
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor combines the interfaces of a supervised regression model.
type Regressor interface {
	Fitter
	Predictor
	Scorer
}

// LinearModel exposes the learned parameters of a linear predictor.
type LinearModel interface {
	Weights() []float64
	Intercept() float64
}
