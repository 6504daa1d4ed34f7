package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParameterSet_Defaults(t *testing.T) {
	p, err := NewParameterSet(665298)
	require.NoError(t, err)

	assert.Equal(t, 665298.0, p.HomePrice())
	assert.Equal(t, 0.644, p.ConstructionCostShare())
	assert.Equal(t, 0.40, p.LaborShare())
	assert.Equal(t, 0.15, p.WagePremium())
	assert.Equal(t, 30, p.MortgageTermYears())

	_, ok := p.MortgageRate()
	assert.False(t, ok, "mortgage projection should be off by default")
}

func TestNewParameterSet_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		opts    []Option
		wantErr Field
	}{
		{"price at minimum", 200_000, nil, ""},
		{"price below minimum", 199_999, nil, FieldHomePrice},
		{"price at maximum", 2_000_000, nil, ""},
		{"price above maximum", 2_000_001, nil, FieldHomePrice},
		{"labor share at maximum", 300_000, []Option{WithLaborShare(0.55)}, ""},
		{"labor share above maximum", 300_000, []Option{WithLaborShare(0.56)}, FieldLaborShare},
		{"labor share below minimum", 300_000, []Option{WithLaborShare(0.24)}, FieldLaborShare},
		{"construction share low", 300_000, []Option{WithConstructionCostShare(0.49)}, FieldConstructionCostShare},
		{"premium at minimum", 300_000, []Option{WithWagePremium(-0.10)}, ""},
		{"premium below minimum", 300_000, []Option{WithWagePremium(-0.11)}, FieldWagePremium},
		{"premium above maximum", 300_000, []Option{WithWagePremium(0.51)}, FieldWagePremium},
		{"zero mortgage rate", 300_000, []Option{WithMortgage(0)}, ""},
		{"mortgage rate too high", 300_000, []Option{WithMortgage(0.21)}, FieldMortgageRate},
		{"negative mortgage rate", 300_000, []Option{WithMortgage(-0.01)}, FieldMortgageRate},
		{"zero term", 300_000, []Option{WithMortgageTerm(0)}, FieldMortgageTermYears},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParameterSet(tt.price, tt.opts...)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantErr, vErr.Field)
			assert.Equal(t, RangeOf(tt.wantErr), vErr.Range)
		})
	}
}

func TestNewParameterSet_RejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewParameterSet(300_000, WithWagePremium(v))
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, FieldWagePremium, vErr.Field)
		assert.Contains(t, vErr.Error(), "finite")
	}
}

func TestValidationError_NamesFieldAndRange(t *testing.T) {
	_, err := NewParameterSet(300_000, WithLaborShare(0.56))
	require.Error(t, err)
	assert.Equal(t, "labor_share must be in [0.25, 0.55], got 0.56", err.Error())
}

func TestParameterSet_WithLeavesReceiverUntouched(t *testing.T) {
	base, err := NewParameterSet(400_000)
	require.NoError(t, err)

	derived, err := base.With(FieldWagePremium, -0.05)
	require.NoError(t, err)

	assert.Equal(t, 0.15, base.WagePremium())
	assert.Equal(t, -0.05, derived.WagePremium())
	assert.NotEqual(t, base, derived)
}

func TestParameterSet_WithValidates(t *testing.T) {
	base, err := NewParameterSet(400_000)
	require.NoError(t, err)

	_, err = base.With(FieldLaborShare, 0.9)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = base.With(Field("bogus"), 1)
	var aErr *InvalidAxisError
	require.ErrorAs(t, err, &aErr)

	_, err = base.With(FieldMortgageTermYears, 15.5)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Error(), "whole number")
}

func TestParameterSet_WithMortgageRateEnablesProjection(t *testing.T) {
	base, err := NewParameterSet(400_000)
	require.NoError(t, err)

	withRate, err := base.With(FieldMortgageRate, 0.065)
	require.NoError(t, err)

	rate, ok := withRate.MortgageRate()
	assert.True(t, ok)
	assert.Equal(t, 0.065, rate)
}

func TestParameterSet_ValueEquality(t *testing.T) {
	a, err := NewParameterSet(500_000, WithLaborShare(0.45), WithMortgage(0.07))
	require.NoError(t, err)
	b, err := NewParameterSet(500_000, WithMortgage(0.07), WithLaborShare(0.45))
	require.NoError(t, err)

	assert.True(t, a == b)

	seen := map[ParameterSet]int{a: 1}
	assert.Equal(t, 1, seen[b])
}

func TestParameterSet_Values(t *testing.T) {
	p, err := NewParameterSet(500_000, WithMortgage(0.07), WithMortgageTerm(15))
	require.NoError(t, err)

	v := p.Values()
	require.NotNil(t, v.MortgageRate)
	assert.Equal(t, 0.07, *v.MortgageRate)
	assert.Equal(t, 15, v.MortgageTermYears)

	noMortgage, err := NewParameterSet(500_000)
	require.NoError(t, err)
	assert.Nil(t, noMortgage.Values().MortgageRate)
}

func TestInputs_Build(t *testing.T) {
	base, err := NewParameterSet(665298, WithMortgage(0.07))
	require.NoError(t, err)

	labor := 0.50
	term := 15
	p, err := Inputs{LaborShare: &labor, MortgageTermYears: &term}.Build(base)
	require.NoError(t, err)

	assert.Equal(t, 665298.0, p.HomePrice())
	assert.Equal(t, 0.50, p.LaborShare())
	assert.Equal(t, base.WagePremium(), p.WagePremium())
	assert.Equal(t, 15, p.MortgageTermYears())
	rate, ok := p.MortgageRate()
	assert.True(t, ok)
	assert.Equal(t, 0.07, rate)
}

func TestInputs_BuildRejectsOutOfRange(t *testing.T) {
	base, err := NewParameterSet(665298)
	require.NoError(t, err)

	price := 199_999.0
	_, err = Inputs{HomePrice: &price}.Build(base)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, FieldHomePrice, vErr.Field)
}

func TestParseFieldAndMetric(t *testing.T) {
	f, ok := ParseField("wage_premium")
	assert.True(t, ok)
	assert.Equal(t, FieldWagePremium, f)

	_, ok = ParseField("land_share")
	assert.False(t, ok)

	assert.True(t, FieldMortgageTermYears.Integer())
	assert.False(t, FieldLaborShare.Integer())

	m, err := ParseMetric("")
	require.NoError(t, err)
	assert.Equal(t, MetricWageIncrease, m)

	_, err = ParseMetric("profit")
	assert.Error(t, err)
}

func TestDirectionFromChange(t *testing.T) {
	assert.Equal(t, DirectionIncrease, DirectionFromChange(10))
	assert.Equal(t, DirectionDecrease, DirectionFromChange(-0.01))
	assert.Equal(t, DirectionNone, DirectionFromChange(0))
}
