package scenario

import (
	"testing"

	"davisbacon/internal/costmodel"
	"davisbacon/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ContainsRequiredPresets(t *testing.T) {
	want := map[string][2]float64{
		NationalAverage:      {0.40, 0.15},
		RightToWorkState:     {0.35, -0.10},
		HighUnionMetro:       {0.45, 0.35},
		ModeratePremium:      {0.40, 0.20},
		ConservativeEstimate: {0.30, 0.07},
		HighImpactEstimate:   {0.50, 0.40},
	}

	c := Default()
	assert.Equal(t, len(want), c.Len())
	for name, vals := range want {
		s, err := c.Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, vals[0], s.LaborShare, name)
		assert.Equal(t, vals[1], s.WagePremium, name)
		assert.NotEmpty(t, s.Description, name)
	}
}

func TestDefault_Order(t *testing.T) {
	assert.Equal(t, []string{
		NationalAverage,
		RightToWorkState,
		HighUnionMetro,
		ModeratePremium,
		ConservativeEstimate,
		HighImpactEstimate,
	}, Default().Names())
}

func TestResolve_RightToWorkYieldsDecrease(t *testing.T) {
	base, err := model.NewParameterSet(665298)
	require.NoError(t, err)

	p, err := Default().Resolve(RightToWorkState, base)
	require.NoError(t, err)

	assert.Equal(t, 0.35, p.LaborShare())
	assert.Equal(t, -0.10, p.WagePremium())
	assert.Equal(t, base.HomePrice(), p.HomePrice())
	assert.Equal(t, base.ConstructionCostShare(), p.ConstructionCostShare())
	assert.Less(t, costmodel.Calculate(p).WageIncrease, 0.0)
}

func TestGet_Unknown(t *testing.T) {
	_, err := Default().Get("Atlantis")

	var uErr *model.UnknownScenarioError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "Atlantis", uErr.Name)
	assert.True(t, IsUnknown(err))
}

func TestCatalog_ReturnedSlicesAreCopies(t *testing.T) {
	c := Default()
	names := c.Names()
	names[0] = "mutated"
	all := c.All()
	all[0].LaborShare = 0.99

	s, err := c.Get(NationalAverage)
	require.NoError(t, err)
	assert.Equal(t, 0.40, s.LaborShare)
	assert.Equal(t, NationalAverage, c.Names()[0])
}

func TestNewCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Scenario
	}{
		{"empty name", []Scenario{{LaborShare: 0.4, WagePremium: 0.1}}},
		{"duplicate", []Scenario{
			{Name: "A", LaborShare: 0.4, WagePremium: 0.1},
			{Name: "A", LaborShare: 0.3, WagePremium: 0.1},
		}},
		{"labor out of range", []Scenario{{Name: "A", LaborShare: 0.6, WagePremium: 0.1}}},
		{"premium out of range", []Scenario{{Name: "A", LaborShare: 0.4, WagePremium: -0.2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.entries)
			assert.Error(t, err)
		})
	}
}

func TestNewCatalog_OutOfRangeIsValidationError(t *testing.T) {
	_, err := NewCatalog([]Scenario{{Name: "A", LaborShare: 0.6, WagePremium: 0.1}})

	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, model.FieldLaborShare, vErr.Field)
}
