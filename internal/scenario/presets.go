package scenario

const (
	NationalAverage      = "National Average"
	RightToWorkState     = "Right-to-Work State"
	HighUnionMetro       = "High-Union Metro"
	ModeratePremium      = "Moderate Premium"
	ConservativeEstimate = "Conservative Estimate"
	HighImpactEstimate   = "High Impact Estimate"
)

// Presets returns the built-in scenario definitions in display order.
func Presets() []Scenario {
	return []Scenario{
		{
			Name:        NationalAverage,
			LaborShare:  0.40,
			WagePremium: 0.15,
			Description: "Prevailing-wage floor roughly 13-15% above market wages nationwide",
			Source:      "DOL methodology studies",
		},
		{
			Name:        RightToWorkState,
			LaborShare:  0.35,
			WagePremium: -0.10,
			Description: "Floor sits below market wages; contractors already pay more, so costs fall or stay flat",
			Source:      "AGM Financial 2024 research",
		},
		{
			Name:        HighUnionMetro,
			LaborShare:  0.45,
			WagePremium: 0.35,
			Description: "Floor up to 36% above market in heavily unionized metros",
			Source:      "Center for Government Research (NY study)",
		},
		{
			Name:        ModeratePremium,
			LaborShare:  0.40,
			WagePremium: 0.20,
			Description: "Mid-range 20-22% wage premium estimate",
			Source:      "Beacon Hill Institute",
		},
		{
			Name:        ConservativeEstimate,
			LaborShare:  0.30,
			WagePremium: 0.07,
			Description: "Lower bound built from the 7% construction cost impact figure",
			Source:      "Beacon Hill Institute (cost impact study)",
		},
		{
			Name:        HighImpactEstimate,
			LaborShare:  0.50,
			WagePremium: 0.40,
			Description: "Upper bound combining the highest published estimates",
			Source:      "Combined upper estimates from multiple studies",
		},
	}
}

var defaultCatalog = mustCatalog(Presets())

func mustCatalog(entries []Scenario) *Catalog {
	c, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the process-wide built-in catalog.
func Default() *Catalog { return defaultCatalog }
