package models

import (
	"davisbacon/internal/analysis"
	"davisbacon/internal/config"
	"davisbacon/internal/costmodel"
	"davisbacon/internal/model"
	"davisbacon/internal/scenario"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Result is the JSON form of a CalculationResult.
type Result struct {
	Parameters        model.Values    `json:"parameters"`
	ConstructionCost  float64         `json:"construction_cost"`
	LaborCost         float64         `json:"labor_cost"`
	WageIncrease      float64         `json:"wage_increase"`
	PercentIncrease   float64         `json:"percent_increase"`
	AdjustedHomePrice float64         `json:"adjusted_home_price"`
	Direction         model.Direction `json:"direction"`
	Mortgage          *Mortgage       `json:"mortgage,omitempty"`
}

type Mortgage struct {
	MonthlyPayment         float64 `json:"monthly_payment"`
	AdjustedMonthlyPayment float64 `json:"adjusted_monthly_payment"`
	MonthlyPaymentDelta    float64 `json:"monthly_payment_delta"`
	LifetimePaymentDelta   float64 `json:"lifetime_payment_delta"`
}

func NewResult(r model.CalculationResult) Result {
	out := Result{
		Parameters:        r.Params.Values(),
		ConstructionCost:  r.ConstructionCost,
		LaborCost:         r.LaborCost,
		WageIncrease:      r.WageIncrease,
		PercentIncrease:   r.PercentIncrease,
		AdjustedHomePrice: r.AdjustedHomePrice,
		Direction:         r.Direction,
	}
	if r.HasMortgage {
		out.Mortgage = &Mortgage{
			MonthlyPayment:         r.MonthlyPayment,
			AdjustedMonthlyPayment: r.AdjustedMonthlyPayment,
			MonthlyPaymentDelta:    r.MonthlyPaymentDelta,
			LifetimePaymentDelta:   r.LifetimePaymentDelta,
		}
	}
	return out
}

// CalculateResponse represents the response from a single evaluation
type CalculateResponse struct {
	Scenario  string              `json:"scenario,omitempty"`
	Result    Result              `json:"result"`
	Breakdown costmodel.Breakdown `json:"breakdown"`
}

// SensitivityResponse carries one metric of a grid, row-major.
type SensitivityResponse struct {
	RowField    model.Field          `json:"row_field"`
	ColumnField model.Field          `json:"column_field"`
	Rows        []float64            `json:"rows"`
	Columns     []float64            `json:"columns"`
	Metric      model.Metric         `json:"metric"`
	Values      [][]float64          `json:"values"`
	Summary     analysis.GridSummary `json:"summary"`
}

type SweepResponse struct {
	Field       model.Field   `json:"field"`
	SeriesField model.Field   `json:"series_field,omitempty"`
	Metric      model.Metric  `json:"metric"`
	X           []float64     `json:"x"`
	Series      []SweepSeries `json:"series"`
}

type SweepSeries struct {
	Label  string    `json:"label"`
	Value  *float64  `json:"value,omitempty"`
	Values []float64 `json:"values"`
}

// CompareResponse lists evaluated entries in request order (or by impact).
type CompareResponse struct {
	Rows []CompareRow `json:"rows"`
}

type CompareRow struct {
	Label    string `json:"label"`
	Scenario string `json:"scenario,omitempty"`
	Result   Result `json:"result"`
}

func NewCompareResponse(rows []analysis.Row) CompareResponse {
	out := CompareResponse{Rows: make([]CompareRow, len(rows))}
	for i, r := range rows {
		out.Rows[i] = CompareRow{Label: r.Label, Scenario: r.Scenario, Result: NewResult(r.Result)}
	}
	return out
}

// ParameterInfo describes one input for building controls.
type ParameterInfo struct {
	Name model.Field `json:"name"`
	config.ParameterConfig
	ValidRange model.Range `json:"valid_range"`
	Integer    bool        `json:"integer"`
}

type ParametersResponse struct {
	Parameters []ParameterInfo `json:"parameters"`
}

type ScenariosResponse struct {
	Scenarios []scenario.Scenario `json:"scenarios"`
}

type SourcesResponse struct {
	Sources []config.SourceConfig `json:"sources"`
}
