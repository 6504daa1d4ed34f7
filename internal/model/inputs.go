package model

// Inputs is the raw, partially specified form of a ParameterSet as collected
// from a request or a set of UI controls. Nil fields fall back to a base set.
type Inputs struct {
	HomePrice             *float64 `json:"home_price,omitempty" yaml:"home_price,omitempty"`
	ConstructionCostShare *float64 `json:"construction_cost_share,omitempty" yaml:"construction_cost_share,omitempty"`
	LaborShare            *float64 `json:"labor_share,omitempty" yaml:"labor_share,omitempty"`
	WagePremium           *float64 `json:"wage_premium,omitempty" yaml:"wage_premium,omitempty"`
	MortgageRate          *float64 `json:"mortgage_rate,omitempty" yaml:"mortgage_rate,omitempty"`
	MortgageTermYears     *int     `json:"mortgage_term_years,omitempty" yaml:"mortgage_term_years,omitempty"`
}

// Build overlays the provided fields onto base and validates the result.
func (in Inputs) Build(base ParameterSet) (ParameterSet, error) {
	opts := []Option{
		WithConstructionCostShare(base.constructionCostShare),
		WithLaborShare(base.laborShare),
		WithWagePremium(base.wagePremium),
		WithMortgageTerm(base.mortgageTermYears),
	}
	if base.hasMortgage {
		opts = append(opts, WithMortgage(base.mortgageRate))
	}

	homePrice := base.homePrice
	if in.HomePrice != nil {
		homePrice = *in.HomePrice
	}
	if in.ConstructionCostShare != nil {
		opts = append(opts, WithConstructionCostShare(*in.ConstructionCostShare))
	}
	if in.LaborShare != nil {
		opts = append(opts, WithLaborShare(*in.LaborShare))
	}
	if in.WagePremium != nil {
		opts = append(opts, WithWagePremium(*in.WagePremium))
	}
	if in.MortgageRate != nil {
		opts = append(opts, WithMortgage(*in.MortgageRate))
	}
	if in.MortgageTermYears != nil {
		opts = append(opts, WithMortgageTerm(*in.MortgageTermYears))
	}
	return NewParameterSet(homePrice, opts...)
}
