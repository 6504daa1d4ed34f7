package costmodel

import "davisbacon/internal/model"

// Breakdown splits a home's sale price into the parts the wage floor can and
// cannot touch, and lays out the waterfall from base to adjusted price.
type Breakdown struct {
	// Shares of the base sale price; they sum to 1.
	OtherShare     float64 `json:"other_share"` // land, profit, overhead
	MaterialsShare float64 `json:"materials_share"`
	LaborShare     float64 `json:"labor_share"`

	Steps []WaterfallStep `json:"steps"`
}

// Measure says how a waterfall bar relates to the running total.
type Measure string

const (
	MeasureAbsolute Measure = "absolute"
	MeasureRelative Measure = "relative"
	MeasureTotal    Measure = "total"
)

// WaterfallStep is one bar of the price waterfall.
// Amount moves the running total; Reference is the figure to label the bar with.
type WaterfallStep struct {
	Label     string  `json:"label"`
	Measure   Measure `json:"measure"`
	Amount    float64 `json:"amount"`
	Reference float64 `json:"reference"`
}

// BreakdownOf derives the cost breakdown from an evaluated result.
func BreakdownOf(res model.CalculationResult) Breakdown {
	p := res.Params
	ccs := p.ConstructionCostShare()
	ls := p.LaborShare()
	return Breakdown{
		OtherShare:     1 - ccs,
		MaterialsShare: ccs * (1 - ls),
		LaborShare:     ccs * ls,
		Steps: []WaterfallStep{
			{Label: "Starting home price", Measure: MeasureAbsolute, Amount: p.HomePrice(), Reference: p.HomePrice()},
			// Construction is already inside the sale price, so it does not move the total.
			{Label: "Construction costs", Measure: MeasureRelative, Amount: 0, Reference: res.ConstructionCost},
			{Label: "Wage floor impact", Measure: MeasureRelative, Amount: res.WageIncrease, Reference: res.WageIncrease},
			{Label: "Final home price", Measure: MeasureTotal, Amount: res.AdjustedHomePrice, Reference: res.AdjustedHomePrice},
		},
	}
}
