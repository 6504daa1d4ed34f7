package model

// Direction is the sign of a price impact.
// Keep these values stable; they are intended for CSV output.
type Direction string

const (
	DirectionIncrease Direction = "INCREASE"
	DirectionNone     Direction = "NONE"
	DirectionDecrease Direction = "DECREASE"
)

func DirectionFromChange(delta float64) Direction {
	switch {
	case delta > 0:
		return DirectionIncrease
	case delta < 0:
		return DirectionDecrease
	default:
		return DirectionNone
	}
}
