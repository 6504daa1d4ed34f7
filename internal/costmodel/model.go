// Package costmodel evaluates the closed-form Davis-Bacon price impact formula.
//
//	construction_cost   = home_price × construction_cost_share
//	labor_cost          = construction_cost × labor_share
//	wage_increase       = labor_cost × wage_premium
//	percent_increase    = wage_increase / home_price
//	adjusted_home_price = home_price + wage_increase
//
// Everything here is pure arithmetic over an already validated ParameterSet,
// so none of it can fail.
package costmodel

import (
	"math"

	"davisbacon/internal/model"
)

// Model is the default evaluator. It holds no state.
type Model struct{}

func New() *Model { return &Model{} }

// Evaluate implements the evaluator contract used by the analysis package.
func (m *Model) Evaluate(p model.ParameterSet) model.CalculationResult {
	return Calculate(p)
}

// Calculate runs the price formula and, when p carries a mortgage rate,
// the payment projection.
func Calculate(p model.ParameterSet) model.CalculationResult {
	homePrice := p.HomePrice()
	constructionCost := homePrice * p.ConstructionCostShare()
	laborCost := constructionCost * p.LaborShare()
	wageIncrease := laborCost * p.WagePremium()

	res := model.CalculationResult{
		Params:            p,
		ConstructionCost:  constructionCost,
		LaborCost:         laborCost,
		WageIncrease:      wageIncrease,
		PercentIncrease:   wageIncrease / homePrice,
		AdjustedHomePrice: homePrice + wageIncrease,
		Direction:         model.DirectionFromChange(wageIncrease),
	}

	rate, ok := p.MortgageRate()
	if !ok {
		return res
	}
	term := p.MortgageTermYears()
	res.HasMortgage = true
	res.MonthlyPayment = MonthlyPayment(homePrice, rate, term)
	res.AdjustedMonthlyPayment = MonthlyPayment(res.AdjustedHomePrice, rate, term)
	res.MonthlyPaymentDelta = res.AdjustedMonthlyPayment - res.MonthlyPayment
	res.LifetimePaymentDelta = res.MonthlyPaymentDelta * float64(12*term)
	return res
}

// MonthlyPayment is the fixed-rate amortised payment on principal.
// A zero rate falls back to straight-line repayment.
// annualRate is a fraction (0.07 for 7%); termYears must be > 0.
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	n := float64(termYears * 12)
	if annualRate == 0 {
		return principal / n
	}
	r := annualRate / 12
	// r / (1 - (1+r)^-n) stays finite for long terms where (1+r)^n overflows.
	return principal * r / (1 - math.Pow(1+r, -n))
}
