package metrics

import (
	"math"
	"sort"

	"github.com/YuminosukeSato/gboost/pkg/errors"
)

// Baseline scores: the error a trivial constant predictor achieves. A
// fitted model that cannot beat these has learned nothing.

// MajorityClassErrorRate returns the error rate on yTest of always
// predicting the majority class of yTrain. Labels are expected in {0, 1}.
func MajorityClassErrorRate(yTrain, yTest []float64) (float64, error) {
	if len(yTrain) == 0 || len(yTest) == 0 {
		return 0, errors.NewModelError("MajorityClassErrorRate", "empty slice", errors.ErrEmptyData)
	}

	ones := 0
	for _, label := range yTrain {
		if label == 1 {
			ones++
		}
	}
	majority := 0.0
	if 2*ones >= len(yTrain) {
		majority = 1.0
	}

	wrong := 0
	for _, label := range yTest {
		if label != majority {
			wrong++
		}
	}
	return float64(wrong) / float64(len(yTest)), nil
}

// MeanPredictorMSE returns the MSE on yTest of always predicting the mean
// of yTrain.
func MeanPredictorMSE(yTrain, yTest []float64) (float64, error) {
	if len(yTrain) == 0 || len(yTest) == 0 {
		return 0, errors.NewModelError("MeanPredictorMSE", "empty slice", errors.ErrEmptyData)
	}

	var mean float64
	for _, v := range yTrain {
		mean += v
	}
	mean /= float64(len(yTrain))

	var sum float64
	for _, v := range yTest {
		diff := v - mean
		sum += diff * diff
	}
	return sum / float64(len(yTest)), nil
}

// MedianPredictorMAD returns the mean absolute deviation on yTest of always
// predicting the median of yTrain.
func MedianPredictorMAD(yTrain, yTest []float64) (float64, error) {
	if len(yTrain) == 0 || len(yTest) == 0 {
		return 0, errors.NewModelError("MedianPredictorMAD", "empty slice", errors.ErrEmptyData)
	}

	sorted := make([]float64, len(yTrain))
	copy(sorted, yTrain)
	sort.Float64s(sorted)

	var median float64
	if n := len(sorted); n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	var sum float64
	for _, v := range yTest {
		sum += math.Abs(v - median)
	}
	return sum / float64(len(yTest)), nil
}
