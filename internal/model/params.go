package model

import "math"

// ParameterSet is the validated, immutable set of model inputs.
// Units:
// - HomePrice: dollars
// - ConstructionCostShare: fraction of the sale price
// - LaborShare: fraction of construction cost
// - WagePremium: signed fraction over market wages
// - MortgageRate: annual rate as a fraction (optional)
// - MortgageTermYears: whole years
//
// The zero value is not valid; build one with NewParameterSet.
// ParameterSet is comparable, so == is value equality.
type ParameterSet struct {
	homePrice             float64
	constructionCostShare float64
	laborShare            float64
	wagePremium           float64
	mortgageRate          float64
	mortgageTermYears     int
	hasMortgage           bool
}

// Option sets one raw input before validation.
type Option func(*ParameterSet)

func WithConstructionCostShare(v float64) Option {
	return func(p *ParameterSet) { p.constructionCostShare = v }
}

func WithLaborShare(v float64) Option {
	return func(p *ParameterSet) { p.laborShare = v }
}

func WithWagePremium(v float64) Option {
	return func(p *ParameterSet) { p.wagePremium = v }
}

// WithMortgage enables monthly/lifetime payment projections at the given annual rate.
func WithMortgage(rate float64) Option {
	return func(p *ParameterSet) {
		p.mortgageRate = rate
		p.hasMortgage = true
	}
}

func WithMortgageTerm(years int) Option {
	return func(p *ParameterSet) { p.mortgageTermYears = years }
}

// NewParameterSet applies defaults, then opts, then validates.
func NewParameterSet(homePrice float64, opts ...Option) (ParameterSet, error) {
	p := ParameterSet{
		homePrice:             homePrice,
		constructionCostShare: DefaultConstructionCostShare,
		laborShare:            DefaultLaborShare,
		wagePremium:           DefaultWagePremium,
		mortgageTermYears:     DefaultMortgageTermYears,
	}
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.Validate(); err != nil {
		return ParameterSet{}, err
	}
	return p, nil
}

// Validate checks every field against its closed interval.
// The first offending field (in canonical order) is reported.
func (p ParameterSet) Validate() error {
	for _, f := range fieldOrder {
		if f == FieldMortgageRate && !p.hasMortgage {
			continue
		}
		if err := checkField(f, p.Value(f)); err != nil {
			return err
		}
	}
	return nil
}

func checkField(f Field, v float64) error {
	info := fieldTable[f]
	if math.IsNaN(v) || math.IsInf(v, 0) || !info.rng.Contains(v) {
		return &ValidationError{Field: f, Value: v, Range: info.rng}
	}
	if info.integer && v != math.Trunc(v) {
		return &ValidationError{Field: f, Value: v, Range: info.rng}
	}
	return nil
}

func (p ParameterSet) HomePrice() float64             { return p.homePrice }
func (p ParameterSet) ConstructionCostShare() float64 { return p.constructionCostShare }
func (p ParameterSet) LaborShare() float64            { return p.laborShare }
func (p ParameterSet) WagePremium() float64           { return p.wagePremium }
func (p ParameterSet) MortgageTermYears() int         { return p.mortgageTermYears }

// MortgageRate returns the annual rate and whether a projection was requested.
func (p ParameterSet) MortgageRate() (float64, bool) {
	return p.mortgageRate, p.hasMortgage
}

// Value returns the numeric value of f. Unknown fields return 0.
func (p ParameterSet) Value(f Field) float64 {
	switch f {
	case FieldHomePrice:
		return p.homePrice
	case FieldConstructionCostShare:
		return p.constructionCostShare
	case FieldLaborShare:
		return p.laborShare
	case FieldWagePremium:
		return p.wagePremium
	case FieldMortgageRate:
		return p.mortgageRate
	case FieldMortgageTermYears:
		return float64(p.mortgageTermYears)
	default:
		return 0
	}
}

// With returns a copy of p with f set to v. p itself is unchanged.
// Setting FieldMortgageRate turns the mortgage projection on.
func (p ParameterSet) With(f Field, v float64) (ParameterSet, error) {
	if !f.Valid() {
		return ParameterSet{}, &InvalidAxisError{Axis: string(f), Reason: "unknown field"}
	}
	if err := checkField(f, v); err != nil {
		return ParameterSet{}, err
	}
	out := p
	switch f {
	case FieldHomePrice:
		out.homePrice = v
	case FieldConstructionCostShare:
		out.constructionCostShare = v
	case FieldLaborShare:
		out.laborShare = v
	case FieldWagePremium:
		out.wagePremium = v
	case FieldMortgageRate:
		out.mortgageRate = v
		out.hasMortgage = true
	case FieldMortgageTermYears:
		out.mortgageTermYears = int(v)
	}
	return out, nil
}

// Values is the flat, serialisable view of a ParameterSet.
type Values struct {
	HomePrice             float64  `json:"home_price" yaml:"home_price"`
	ConstructionCostShare float64  `json:"construction_cost_share" yaml:"construction_cost_share"`
	LaborShare            float64  `json:"labor_share" yaml:"labor_share"`
	WagePremium           float64  `json:"wage_premium" yaml:"wage_premium"`
	MortgageRate          *float64 `json:"mortgage_rate,omitempty" yaml:"mortgage_rate,omitempty"`
	MortgageTermYears     int      `json:"mortgage_term_years" yaml:"mortgage_term_years"`
}

func (p ParameterSet) Values() Values {
	v := Values{
		HomePrice:             p.homePrice,
		ConstructionCostShare: p.constructionCostShare,
		LaborShare:            p.laborShare,
		WagePremium:           p.wagePremium,
		MortgageTermYears:     p.mortgageTermYears,
	}
	if p.hasMortgage {
		rate := p.mortgageRate
		v.MortgageRate = &rate
	}
	return v
}
