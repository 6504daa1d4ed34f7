package analysis

import (
	"fmt"
	"math"

	"davisbacon/internal/model"
)

// MaxSteps caps the sample count on one axis.
const MaxSteps = 500

// AxisSpec describes one varying input.
// Nil Bounds means the field's full valid range.
type AxisSpec struct {
	Field  model.Field
	Steps  int
	Bounds *model.Range
}

// resolve validates the axis and returns its ascending sample points.
func (s AxisSpec) resolve() ([]float64, error) {
	name := string(s.Field)
	if !s.Field.Valid() {
		return nil, &model.InvalidAxisError{Axis: name, Reason: "not a parameter field"}
	}
	if s.Field.Integer() {
		return nil, &model.InvalidAxisError{Axis: name, Reason: "integer fields cannot be sampled"}
	}
	if s.Steps < 2 {
		return nil, &model.InvalidRangeError{Axis: name, Reason: fmt.Sprintf("steps must be at least 2, got %d", s.Steps)}
	}
	if s.Steps > MaxSteps {
		return nil, &model.InvalidRangeError{Axis: name, Reason: fmt.Sprintf("steps must be at most %d, got %d", MaxSteps, s.Steps)}
	}

	valid := model.RangeOf(s.Field)
	bounds := valid
	if s.Bounds != nil {
		bounds = *s.Bounds
	}
	if !finite(bounds.Min) || !finite(bounds.Max) {
		return nil, &model.InvalidRangeError{Axis: name, Reason: "bounds must be finite"}
	}
	if !valid.Contains(bounds.Min) || !valid.Contains(bounds.Max) {
		return nil, &model.InvalidRangeError{Axis: name, Reason: fmt.Sprintf("bounds %s fall outside the valid range %s", bounds, valid)}
	}
	if bounds.Min >= bounds.Max {
		return nil, &model.InvalidRangeError{Axis: name, Reason: fmt.Sprintf("low bound %g must be below high bound %g", bounds.Min, bounds.Max)}
	}
	return linspace(bounds.Min, bounds.Max, s.Steps), nil
}

// linspace returns n evenly spaced points from lo to hi inclusive.
// The last point is exactly hi.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	span := hi - lo
	last := float64(n - 1)
	for i := range out {
		out[i] = lo + span*float64(i)/last
	}
	out[n-1] = hi
	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
