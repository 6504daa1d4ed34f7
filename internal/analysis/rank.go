package analysis

import "sort"

// RankByImpact returns a copy of rows sorted by descending wage increase.
// Ties keep their input order.
func RankByImpact(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.WageIncrease > out[j].Result.WageIncrease
	})
	return out
}
