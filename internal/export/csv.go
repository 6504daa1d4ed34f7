// Package export writes comparison tables and sensitivity grids as CSV.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"davisbacon/internal/analysis"
	"davisbacon/internal/model"

	"github.com/shopspring/decimal"
)

var comparisonHeader = []string{
	"label",
	"scenario",
	"home_price",
	"construction_cost_share",
	"labor_share",
	"wage_premium",
	"mortgage_rate",
	"mortgage_term_years",
	"construction_cost",
	"labor_cost",
	"wage_increase",
	"percent_increase",
	"adjusted_home_price",
	"direction",
	"monthly_payment",
	"adjusted_monthly_payment",
	"monthly_payment_delta",
	"lifetime_payment_delta",
}

// WriteComparisonCSV writes one line per row. Mortgage columns are blank for
// rows evaluated without a mortgage rate.
func WriteComparisonCSV(out io.Writer, rows []analysis.Row) error {
	w := csv.NewWriter(out)
	if err := w.Write(comparisonHeader); err != nil {
		return err
	}

	for _, r := range rows {
		res := r.Result
		p := res.Params

		rate := ""
		if v, ok := p.MortgageRate(); ok {
			rate = Fraction(v)
		}
		payment, adjusted, delta, lifetime := "", "", "", ""
		if res.HasMortgage {
			payment = Money(res.MonthlyPayment)
			adjusted = Money(res.AdjustedMonthlyPayment)
			delta = Money(res.MonthlyPaymentDelta)
			lifetime = Money(res.LifetimePaymentDelta)
		}

		row := []string{
			r.Label,
			r.Scenario,
			Money(p.HomePrice()),
			Fraction(p.ConstructionCostShare()),
			Fraction(p.LaborShare()),
			Fraction(p.WagePremium()),
			rate,
			strconv.Itoa(p.MortgageTermYears()),
			Money(res.ConstructionCost),
			Money(res.LaborCost),
			Money(res.WageIncrease),
			Fraction(res.PercentIncrease),
			Money(res.AdjustedHomePrice),
			string(res.Direction),
			payment,
			adjusted,
			delta,
			lifetime,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteGridCSV writes one metric of g as a matrix. The header row holds the
// column-axis values; each line starts with its row-axis value.
func WriteGridCSV(out io.Writer, g *analysis.Grid, m model.Metric) error {
	w := csv.NewWriter(out)

	header := make([]string, 0, len(g.Columns)+1)
	header = append(header, string(g.RowField)+`\`+string(g.ColumnField))
	for _, c := range g.Columns {
		header = append(header, axisValue(g.ColumnField, c))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	format := Money
	if m == model.MetricPercentIncrease {
		format = Fraction
	}
	for i, row := range g.Values(m) {
		line := make([]string, 0, len(row)+1)
		line = append(line, axisValue(g.RowField, g.Rows[i]))
		for _, v := range row {
			line = append(line, format(v))
		}
		if err := w.Write(line); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func axisValue(f model.Field, v float64) string {
	if f == model.FieldHomePrice {
		return Money(v)
	}
	return Fraction(v)
}

// Money formats a dollar amount to cents.
func Money(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}

// Fraction formats a share, premium or rate to six decimals.
func Fraction(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(6)
}
