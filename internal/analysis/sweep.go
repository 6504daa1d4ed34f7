package analysis

import (
	"fmt"

	"davisbacon/internal/metrics"
	"davisbacon/internal/model"
)

// DefaultSeriesLaborShares are the lines drawn on the premium-vs-impact chart.
var DefaultSeriesLaborShares = []float64{0.30, 0.35, 0.40, 0.45, 0.50}

// SweepRequest varies Axis over its range. When SeriesField is set, one line
// is produced per SeriesValues entry with that field held at the value.
type SweepRequest struct {
	Base         model.ParameterSet
	Axis         AxisSpec
	SeriesField  model.Field
	SeriesValues []float64
}

// Series is one line of a sweep.
type Series struct {
	Label   string
	Value   *float64 // nil when the sweep has no series field
	Results []model.CalculationResult
}

// Sweep is a family of one-axis result lines sharing X.
type Sweep struct {
	Field       model.Field
	SeriesField model.Field
	X           []float64
	Series      []Series
}

func (a *Analyzer) Sweep(req SweepRequest) (*Sweep, error) {
	if err := req.Base.Validate(); err != nil {
		return nil, err
	}
	xs, err := req.Axis.resolve()
	if err != nil {
		return nil, err
	}

	type line struct {
		label string
		value *float64
		base  model.ParameterSet
	}
	var lines []line
	if req.SeriesField == "" {
		lines = append(lines, line{label: string(req.Axis.Field), base: req.Base})
	} else {
		if req.SeriesField == req.Axis.Field {
			return nil, &model.InvalidAxisError{Axis: string(req.SeriesField), Reason: "series field must differ from the swept field"}
		}
		if !req.SeriesField.Valid() {
			return nil, &model.InvalidAxisError{Axis: string(req.SeriesField), Reason: "not a parameter field"}
		}
		if len(req.SeriesValues) == 0 {
			return nil, &model.InvalidRangeError{Axis: string(req.SeriesField), Reason: "at least one series value is required"}
		}
		for _, v := range req.SeriesValues {
			b, err := req.Base.With(req.SeriesField, v)
			if err != nil {
				return nil, err
			}
			val := v
			lines = append(lines, line{
				label: fmt.Sprintf("%s=%g", req.SeriesField, v),
				value: &val,
				base:  b,
			})
		}
	}

	out := &Sweep{
		Field:       req.Axis.Field,
		SeriesField: req.SeriesField,
		X:           xs,
		Series:      make([]Series, 0, len(lines)),
	}
	for _, l := range lines {
		results := make([]model.CalculationResult, len(xs))
		for i, x := range xs {
			p, err := l.base.With(req.Axis.Field, x)
			if err != nil {
				return nil, err
			}
			results[i] = a.eval.Evaluate(p)
		}
		out.Series = append(out.Series, Series{Label: l.label, Value: l.value, Results: results})
	}
	metrics.Evaluations.WithLabelValues("sweep").Add(float64(len(xs) * len(lines)))
	return out, nil
}

// Values extracts one metric per series, aligned with X.
func (s *Sweep) Values(m model.Metric) [][]float64 {
	out := make([][]float64, len(s.Series))
	for i, line := range s.Series {
		out[i] = make([]float64, len(line.Results))
		for j, r := range line.Results {
			out[i][j], _ = r.Metric(m)
		}
	}
	return out
}
