package models

import "davisbacon/internal/model"

const (
	// DefaultGridSteps is the per-axis resolution when a request omits steps.
	DefaultGridSteps = 20
	// DefaultSweepSteps is the number of x points in a sweep.
	DefaultSweepSteps = 50
)

// CalculateRequest represents the request body for a single evaluation.
// Parameters overlay the server defaults; a scenario, when named, is applied
// on top of them.
type CalculateRequest struct {
	Scenario   string       `json:"scenario,omitempty"`
	Parameters model.Inputs `json:"parameters"`
}

// AxisRequest describes one varying input. Min and Max default to the
// field's full valid range and must be given together.
type AxisRequest struct {
	Field string   `json:"field" binding:"required"`
	Steps int      `json:"steps,omitempty" binding:"omitempty,min=0"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

// SensitivityRequest asks for a two-axis grid of one metric.
type SensitivityRequest struct {
	Parameters model.Inputs `json:"parameters"`
	Rows       AxisRequest  `json:"rows" binding:"required"`
	Columns    AxisRequest  `json:"columns" binding:"required"`
	Metric     string       `json:"metric,omitempty"` // default: wage_increase
}

// SweepRequest asks for one or more lines along a single axis.
type SweepRequest struct {
	Parameters   model.Inputs `json:"parameters"`
	Axis         AxisRequest  `json:"axis" binding:"required"`
	SeriesField  string       `json:"series_field,omitempty"`
	SeriesValues []float64    `json:"series_values,omitempty"`
	Metric       string       `json:"metric,omitempty"`
}

// CompareRequest represents a comparison of presets and custom parameter sets.
// No entries means every preset in catalog order.
type CompareRequest struct {
	Base    model.Inputs   `json:"base"`
	Entries []CompareEntry `json:"entries,omitempty" binding:"omitempty,dive"`
	Sort    string         `json:"sort,omitempty" binding:"omitempty,oneof=impact"`
}

// CompareEntry names a preset or carries custom parameters (overlaid on the
// base). Setting both is rejected with INVALID_REQUEST.
type CompareEntry struct {
	Label      string        `json:"label,omitempty"`
	Scenario   string        `json:"scenario,omitempty"`
	Parameters *model.Inputs `json:"parameters,omitempty"`
}
