package model

import (
	"fmt"
	"math"
)

// ValidationError reports a ParameterSet field outside its valid interval,
// or a value that is not a finite number.
type ValidationError struct {
	Field Field
	Value float64
	Range Range
}

func (e *ValidationError) Error() string {
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		return fmt.Sprintf("%s must be a finite number in %s, got %v", e.Field, e.Range, e.Value)
	}
	if e.Field.Integer() && e.Value != math.Trunc(e.Value) {
		return fmt.Sprintf("%s must be a whole number in %s, got %v", e.Field, e.Range, e.Value)
	}
	return fmt.Sprintf("%s must be in %s, got %v", e.Field, e.Range, e.Value)
}

// UnknownScenarioError reports a preset name that is not in the catalog.
type UnknownScenarioError struct {
	Name string
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario %q", e.Name)
}

// InvalidAxisError reports a sensitivity axis that cannot be varied.
type InvalidAxisError struct {
	Axis   string
	Reason string
}

func (e *InvalidAxisError) Error() string {
	return fmt.Sprintf("invalid axis %q: %s", e.Axis, e.Reason)
}

// InvalidRangeError reports malformed bounds or step counts for an axis.
type InvalidRangeError struct {
	Axis   string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range for %q: %s", e.Axis, e.Reason)
}
