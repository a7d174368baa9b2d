// Package modelselection provides train/test holdout splitting for
// experiment harnesses. The boosting core does not depend on it.
package modelselection

import (
	"math"
	"math/rand"
	"sort"

	"github.com/YuminosukeSato/gboost/pkg/errors"
)

// TrainTestIndices partitions the index range [0, n) into disjoint train
// and test sets using a uniform random permutation from rng. The test set
// has round(testSize*n) elements; train is the complement. Both are
// returned in ascending order.
func TrainTestIndices(n int, testSize float64, rng *rand.Rand) (train, test []int, err error) {
	if n <= 0 {
		return nil, nil, errors.NewHyperparameterError("n", "must be positive", n)
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, errors.NewHyperparameterError("test_size", "must be in (0, 1)", testSize)
	}

	k := int(math.Round(testSize * float64(n)))
	if k < 1 {
		k = 1
	}
	if k >= n {
		k = n - 1
	}

	perm := rng.Perm(n)
	test = append([]int(nil), perm[:k]...)
	train = append([]int(nil), perm[k:]...)
	sort.Ints(test)
	sort.Ints(train)
	return train, test, nil
}
