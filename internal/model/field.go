package model

import "fmt"

// Field names one ParameterSet input. The string value is the wire/config key.
type Field string

const (
	FieldHomePrice             Field = "home_price"
	FieldConstructionCostShare Field = "construction_cost_share"
	FieldLaborShare            Field = "labor_share"
	FieldWagePremium           Field = "wage_premium"
	FieldMortgageRate          Field = "mortgage_rate"
	FieldMortgageTermYears     Field = "mortgage_term_years"
)

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// Default values for the optional model inputs.
const (
	DefaultConstructionCostShare = 0.644
	DefaultLaborShare            = 0.40
	DefaultWagePremium           = 0.15
	DefaultMortgageTermYears     = 30
)

type fieldInfo struct {
	rng     Range
	integer bool
}

// Keep this table in canonical order; Fields() walks it.
var fieldOrder = []Field{
	FieldHomePrice,
	FieldConstructionCostShare,
	FieldLaborShare,
	FieldWagePremium,
	FieldMortgageRate,
	FieldMortgageTermYears,
}

var fieldTable = map[Field]fieldInfo{
	FieldHomePrice:             {rng: Range{Min: 200_000, Max: 2_000_000}},
	FieldConstructionCostShare: {rng: Range{Min: 0.50, Max: 0.75}},
	FieldLaborShare:            {rng: Range{Min: 0.25, Max: 0.55}},
	FieldWagePremium:           {rng: Range{Min: -0.10, Max: 0.50}},
	FieldMortgageRate:          {rng: Range{Min: 0.0, Max: 0.20}},
	FieldMortgageTermYears:     {rng: Range{Min: 1, Max: 50}, integer: true},
}

// Fields returns every field in canonical order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// ParseField resolves a field by its key.
func ParseField(name string) (Field, bool) {
	f := Field(name)
	_, ok := fieldTable[f]
	return f, ok
}

// RangeOf returns the valid closed interval for f.
// Unknown fields return the zero Range.
func RangeOf(f Field) Range {
	return fieldTable[f].rng
}

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	_, ok := fieldTable[f]
	return ok
}

// Integer reports whether f only accepts whole numbers.
func (f Field) Integer() bool {
	return fieldTable[f].integer
}

func (f Field) String() string { return string(f) }
