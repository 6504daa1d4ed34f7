package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"davisbacon/internal/analysis"
	"davisbacon/internal/api/models"
	"davisbacon/internal/costmodel"
	"davisbacon/internal/export"
	"davisbacon/internal/metrics"
	"davisbacon/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalculatorHandler serves evaluations, grids, sweeps and comparisons.
type CalculatorHandler struct {
	analyzer *analysis.Analyzer
	base     model.ParameterSet
	log      *zap.Logger
}

// NewCalculatorHandler creates a calculator handler. base supplies every
// input a request leaves out.
func NewCalculatorHandler(a *analysis.Analyzer, base model.ParameterSet, log *zap.Logger) *CalculatorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CalculatorHandler{analyzer: a, base: base, log: log}
}

// Calculate handles POST /api/v1/calculate
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	p, err := req.Parameters.Build(h.base)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Scenario != "" {
		p, err = h.analyzer.Catalog().Resolve(req.Scenario, p)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	res := h.analyzer.Evaluate(p)
	metrics.Evaluations.WithLabelValues("single").Inc()

	c.JSON(http.StatusOK, models.CalculateResponse{
		Scenario:  req.Scenario,
		Result:    models.NewResult(res),
		Breakdown: costmodel.BreakdownOf(res),
	})
}

// Sensitivity handles POST /api/v1/sensitivity
func (h *CalculatorHandler) Sensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	metric, err := model.ParseMetric(req.Metric)
	if err != nil {
		invalidRequest(c, err)
		return
	}
	base, err := req.Parameters.Build(h.base)
	if err != nil {
		respondError(c, err)
		return
	}

	grid, err := h.analyzer.Grid(analysis.GridRequest{
		Base:    base,
		Rows:    axisSpec(req.Rows, models.DefaultGridSteps),
		Columns: axisSpec(req.Columns, models.DefaultGridSteps),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.log.Debug("grid evaluated",
		zap.String("rows", string(grid.RowField)),
		zap.String("columns", string(grid.ColumnField)),
		zap.Int("cells", grid.Len()),
	)

	c.JSON(http.StatusOK, models.SensitivityResponse{
		RowField:    grid.RowField,
		ColumnField: grid.ColumnField,
		Rows:        grid.Rows,
		Columns:     grid.Columns,
		Metric:      metric,
		Values:      grid.Values(metric),
		Summary:     grid.Summary(metric),
	})
}

// Sweep handles POST /api/v1/sweep
func (h *CalculatorHandler) Sweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	metric, err := model.ParseMetric(req.Metric)
	if err != nil {
		invalidRequest(c, err)
		return
	}
	base, err := req.Parameters.Build(h.base)
	if err != nil {
		respondError(c, err)
		return
	}

	seriesField := model.Field(req.SeriesField)
	seriesValues := req.SeriesValues
	if seriesField == model.FieldLaborShare && len(seriesValues) == 0 {
		seriesValues = analysis.DefaultSeriesLaborShares
	}

	sweep, err := h.analyzer.Sweep(analysis.SweepRequest{
		Base:         base,
		Axis:         axisSpec(req.Axis, models.DefaultSweepSteps),
		SeriesField:  seriesField,
		SeriesValues: seriesValues,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	values := sweep.Values(metric)
	series := make([]models.SweepSeries, len(sweep.Series))
	for i, s := range sweep.Series {
		series[i] = models.SweepSeries{Label: s.Label, Value: s.Value, Values: values[i]}
	}
	c.JSON(http.StatusOK, models.SweepResponse{
		Field:       sweep.Field,
		SeriesField: sweep.SeriesField,
		Metric:      metric,
		X:           sweep.X,
		Series:      series,
	})
}

// Compare handles POST /api/v1/compare
func (h *CalculatorHandler) Compare(c *gin.Context) {
	rows, ok := h.compare(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.NewCompareResponse(rows))
}

// ExportComparison handles POST /api/v1/compare/export
func (h *CalculatorHandler) ExportComparison(c *gin.Context) {
	rows, ok := h.compare(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteComparisonCSV(&buf, rows); err != nil {
		h.log.Error("comparison export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: CodeInternal, Message: "failed to write CSV"},
		})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="scenario_comparison.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// compare binds and runs a comparison, writing the error response itself
// when it returns false.
func (h *CalculatorHandler) compare(c *gin.Context) ([]analysis.Row, bool) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return nil, false
	}
	base, err := req.Base.Build(h.base)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	var rows []analysis.Row
	if len(req.Entries) == 0 {
		rows, err = h.analyzer.CompareAll(base)
	} else {
		var entries []analysis.Entry
		entries, err = buildEntries(req.Entries, base)
		if err == nil {
			rows, err = h.analyzer.Compare(base, entries)
		}
	}
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	if req.Sort == "impact" {
		rows = analysis.RankByImpact(rows)
	}
	return rows, true
}

func buildEntries(in []models.CompareEntry, base model.ParameterSet) ([]analysis.Entry, error) {
	out := make([]analysis.Entry, len(in))
	for i, e := range in {
		out[i] = analysis.Entry{Label: e.Label, Scenario: e.Scenario}
		if e.Scenario != "" && e.Parameters != nil {
			return nil, fmt.Errorf("entry %d: give a scenario name or parameters, not both", i)
		}
		if e.Parameters != nil {
			p, err := e.Parameters.Build(base)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			out[i].Params = &p
		}
	}
	return out, nil
}

// axisSpec fills request defaults. A missing bound falls back to the field's
// valid range; unknown fields are left for the analyzer to reject.
func axisSpec(req models.AxisRequest, defaultSteps int) analysis.AxisSpec {
	spec := analysis.AxisSpec{Field: model.Field(req.Field), Steps: req.Steps}
	if spec.Steps == 0 {
		spec.Steps = defaultSteps
	}
	if req.Min != nil || req.Max != nil {
		bounds := model.RangeOf(spec.Field)
		if req.Min != nil {
			bounds.Min = *req.Min
		}
		if req.Max != nil {
			bounds.Max = *req.Max
		}
		spec.Bounds = &bounds
	}
	return spec
}
