// Package boosting implements stochastic gradient boosting over pluggable
// loss functions and base learners.
//
// A fitted model is a stage-wise additive ensemble
//
//	score(x) = initScore + learningRate * Σ stage_t(x)
//
// built by sequentially fitting a weak learner (a regression tree or an
// injected linear model) to the pseudo-residuals of the loss at the current
// cumulative prediction. Three losses are provided: squared error and
// absolute deviation for regression, binomial deviance for binary
// classification. Each stage may be fit on a uniform random row subsample;
// with a sampling rate of 1 the whole procedure is deterministic.
//
// The externally visible surface is the Problem type constructed with
// NewRegressor or NewClassifier. Fit is a pure builder: it returns a new
// fitted Problem and never mutates its receiver, so one configured Problem
// can seed concurrent experiments safely.
package boosting
