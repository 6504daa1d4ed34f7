package model

import "fmt"

// CalculationResult is everything the cost model derives from one ParameterSet.
// It has no lifecycle of its own; recompute it whenever it is needed.
type CalculationResult struct {
	Params ParameterSet

	ConstructionCost  float64 // home_price * construction_cost_share
	LaborCost         float64 // construction_cost * labor_share
	WageIncrease      float64 // labor_cost * wage_premium; negative is a decrease
	PercentIncrease   float64 // wage_increase / home_price, as a fraction
	AdjustedHomePrice float64 // home_price + wage_increase

	Direction Direction

	// Mortgage fields are only populated when HasMortgage is true.
	HasMortgage            bool
	MonthlyPayment         float64
	AdjustedMonthlyPayment float64
	MonthlyPaymentDelta    float64
	LifetimePaymentDelta   float64
}

// Metric names a numeric CalculationResult field.
type Metric string

const (
	MetricConstructionCost     Metric = "construction_cost"
	MetricLaborCost            Metric = "labor_cost"
	MetricWageIncrease         Metric = "wage_increase"
	MetricPercentIncrease      Metric = "percent_increase"
	MetricAdjustedHomePrice    Metric = "adjusted_home_price"
	MetricMonthlyPaymentDelta  Metric = "monthly_payment_delta"
	MetricLifetimePaymentDelta Metric = "lifetime_payment_delta"
)

var metrics = []Metric{
	MetricConstructionCost,
	MetricLaborCost,
	MetricWageIncrease,
	MetricPercentIncrease,
	MetricAdjustedHomePrice,
	MetricMonthlyPaymentDelta,
	MetricLifetimePaymentDelta,
}

// Metrics lists every metric in a stable order.
func Metrics() []Metric {
	out := make([]Metric, len(metrics))
	copy(out, metrics)
	return out
}

// ParseMetric resolves a metric name. An empty name means wage_increase.
func ParseMetric(name string) (Metric, error) {
	if name == "" {
		return MetricWageIncrease, nil
	}
	for _, m := range metrics {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", name)
}

// Metric returns the value of m. Mortgage metrics on a result without a
// mortgage projection report ok=false.
func (r CalculationResult) Metric(m Metric) (float64, bool) {
	switch m {
	case MetricConstructionCost:
		return r.ConstructionCost, true
	case MetricLaborCost:
		return r.LaborCost, true
	case MetricWageIncrease:
		return r.WageIncrease, true
	case MetricPercentIncrease:
		return r.PercentIncrease, true
	case MetricAdjustedHomePrice:
		return r.AdjustedHomePrice, true
	case MetricMonthlyPaymentDelta:
		return r.MonthlyPaymentDelta, r.HasMortgage
	case MetricLifetimePaymentDelta:
		return r.LifetimePaymentDelta, r.HasMortgage
	default:
		return 0, false
	}
}
