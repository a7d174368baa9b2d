// Package dataset loads flat-file feature sets and provides the row
// selection helpers experiment harnesses use with holdout splits.
package dataset

import (
	"encoding/csv"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gboost/pkg/errors"
)

// LoadCSV reads a numeric CSV file and returns the feature matrix and the
// label vector taken from the last column. When hasHeader is true the first
// record is skipped.
func LoadCSV(path string, hasHeader bool) (*mat.Dense, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening dataset %s", path)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading dataset %s", path)
	}
	if hasHeader && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, nil, errors.NewModelError("LoadCSV", "no data rows", errors.ErrEmptyData)
	}

	cols := len(records[0])
	if cols < 2 {
		return nil, nil, errors.NewDimensionError("LoadCSV", 2, cols, 1)
	}

	X := mat.NewDense(len(records), cols-1, nil)
	y := make([]float64, len(records))
	for i, record := range records {
		if len(record) != cols {
			return nil, nil, errors.NewDimensionError("LoadCSV", cols, len(record), 1)
		}
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "parsing row %d column %d", i, j)
			}
			if j == cols-1 {
				y[i] = v
			} else {
				X.Set(i, j, v)
			}
		}
	}
	return X, y, nil
}

// SelectRows copies the given rows of X into a new matrix, preserving
// order.
func SelectRows(X *mat.Dense, rows []int) *mat.Dense {
	_, cols := X.Dims()
	out := mat.NewDense(len(rows), cols, nil)
	for i, r := range rows {
		out.SetRow(i, X.RawRowView(r))
	}
	return out
}

// SelectLabels copies the given entries of y into a new slice, preserving
// order.
func SelectLabels(y []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = y[r]
	}
	return out
}
