package analysis

import (
	"math"

	"davisbacon/internal/metrics"
	"davisbacon/internal/model"

	"golang.org/x/sync/errgroup"
)

// GridRequest asks for a two-axis sensitivity table around Base.
type GridRequest struct {
	Base    model.ParameterSet
	Rows    AxisSpec
	Columns AxisSpec
}

// Grid is a two-axis table of results. Rows and Columns are ascending;
// Cells[i][j] is the result at (Rows[i], Columns[j]).
type Grid struct {
	RowField    model.Field
	ColumnField model.Field
	Rows        []float64
	Columns     []float64
	Cells       [][]model.CalculationResult
}

// Grid evaluates every (row, column) combination, holding the remaining
// fields at req.Base. Rows are computed concurrently; each task only writes
// its own row.
func (a *Analyzer) Grid(req GridRequest) (*Grid, error) {
	if err := req.Base.Validate(); err != nil {
		return nil, err
	}
	if req.Rows.Field == req.Columns.Field {
		return nil, &model.InvalidAxisError{Axis: string(req.Rows.Field), Reason: "row and column axes must differ"}
	}
	rows, err := req.Rows.resolve()
	if err != nil {
		return nil, err
	}
	cols, err := req.Columns.resolve()
	if err != nil {
		return nil, err
	}

	cells := make([][]model.CalculationResult, len(rows))
	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, rv := range rows {
		i, rv := i, rv
		g.Go(func() error {
			rowBase, err := req.Base.With(req.Rows.Field, rv)
			if err != nil {
				return err
			}
			row := make([]model.CalculationResult, len(cols))
			for j, cv := range cols {
				p, err := rowBase.With(req.Columns.Field, cv)
				if err != nil {
					return err
				}
				row[j] = a.eval.Evaluate(p)
			}
			cells[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := len(rows) * len(cols)
	metrics.Evaluations.WithLabelValues("grid").Add(float64(n))
	metrics.GridCells.Observe(float64(n))

	return &Grid{
		RowField:    req.Rows.Field,
		ColumnField: req.Columns.Field,
		Rows:        rows,
		Columns:     cols,
		Cells:       cells,
	}, nil
}

// Len is the number of cells.
func (g *Grid) Len() int {
	return len(g.Rows) * len(g.Columns)
}

// Values extracts one metric as a row-major matrix, ready for a heatmap.
// Mortgage metrics on a grid without a mortgage rate come back as zeros.
func (g *Grid) Values(m model.Metric) [][]float64 {
	out := make([][]float64, len(g.Cells))
	for i, row := range g.Cells {
		out[i] = make([]float64, len(row))
		for j, cell := range row {
			out[i][j], _ = cell.Metric(m)
		}
	}
	return out
}

// GridSummary describes the spread of one metric across a grid.
type GridSummary struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`

	// ZeroPosition is where zero falls within [Min, Max] as a fraction,
	// for centring a diverging colour scale. Nil when the metric does not
	// change sign.
	ZeroPosition *float64 `json:"zero_position,omitempty"`
}

func (g *Grid) Summary(m model.Metric) GridSummary {
	s := GridSummary{}
	if g.Len() == 0 {
		return s
	}
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	sum := 0.0
	for _, row := range g.Values(m) {
		for _, v := range row {
			sum += v
			if v < minv {
				minv = v
			}
			if v > maxv {
				maxv = v
			}
		}
	}
	s.Min = minv
	s.Max = maxv
	s.Mean = sum / float64(g.Len())
	if minv < 0 && maxv > 0 {
		zp := -minv / (maxv - minv)
		s.ZeroPosition = &zp
	}
	return s
}
