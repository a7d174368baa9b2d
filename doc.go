// Package gboost provides a gradient boosting engine for Go, built around
// pluggable loss functions and base learners.
//
// gboost fits stage-wise additive ensembles of regression trees or linear
// models over squared-error, absolute-deviation and binomial-deviance
// losses, with stochastic row subsampling and shrinkage.
//
// # Quick Start
//
// Fit a boosted regressor and predict:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gboost/boosting"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := []float64{2, 4, 6, 8}
//
//	    fitted, err := boosting.NewRegressor(boosting.Config{
//	        NumIterations: 50,
//	        LearningRate:  0.1,
//	    }).Fit(X, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := fitted.Predict(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(pred)
//	}
//
// # Packages
//
//   - boosting: the boosting driver, losses, tree and linear base learners
//   - linear: ordinary least-squares regression, also the default linear
//     stage
//   - metrics: evaluation metrics and constant-predictor baselines
//   - modelselection: train/test holdout splitting
//   - dataset: flat-file loading and row selection helpers
//   - preprocessing: feature standardization
package gboost
