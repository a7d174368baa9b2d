// Package errors provides the structured error types used across gboost.
//
// Every error produced by the library belongs to one of four families:
// configuration errors (bad hyperparameters, incompatible loss/output pairing),
// input errors (dimension mismatches), state errors (predicting before fitting)
// and domain errors (a computation that is mathematically undefined for the
// supplied data). All constructors attach a stack trace via cockroachdb/errors,
// and the concrete types integrate with zerolog for structured logging.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// NotFittedError is returned when Predict or Score is called on a model
// that has not been fitted yet.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("gboost: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with an attached stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError reports a mismatch between the expected and actual shape of
// an input matrix or vector.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("gboost: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with an attached stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// HyperparameterError is returned when a configuration value is outside its
// valid range. It is raised eagerly, before any fitting work starts.
type HyperparameterError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *HyperparameterError) Error() string {
	return fmt.Sprintf("gboost: invalid hyperparameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *HyperparameterError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "HyperparameterError")
}

// NewHyperparameterError creates a HyperparameterError with an attached stack trace.
func NewHyperparameterError(param, reason string, value interface{}) error {
	err := &HyperparameterError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// IncompatibleLossError is returned when the configured loss function cannot
// be paired with the requested output type, for example binomial deviance
// with a regression output.
type IncompatibleLossError struct {
	Loss   string
	Output string
}

func (e *IncompatibleLossError) Error() string {
	return fmt.Sprintf("gboost: loss %q is incompatible with output type %q", e.Loss, e.Output)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *IncompatibleLossError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("loss", e.Loss).
		Str("output_type", e.Output).
		Str("type", "IncompatibleLossError")
}

// NewIncompatibleLossError creates an IncompatibleLossError with an attached stack trace.
func NewIncompatibleLossError(loss, output string) error {
	err := &IncompatibleLossError{Loss: loss, Output: output}
	return errors.WithStack(err)
}

// DomainError is returned when a computation is undefined for the supplied
// values, for example the log-odds of an all-one-class label set. It is
// surfaced at the point of computation with no silent fallback.
type DomainError struct {
	Op      string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("gboost: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DomainError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "DomainError")
}

// NewDomainError creates a DomainError with an attached stack trace.
func NewDomainError(op, message string) error {
	err := &DomainError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is a general error raised while fitting or applying a model.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gboost: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("gboost: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with an attached stack trace.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

var (
	// ErrEmptyData is returned when a fit or predict call receives no rows.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is returned when a linear solve hits a singular matrix.
	ErrSingularMatrix = New("singular matrix")
)
