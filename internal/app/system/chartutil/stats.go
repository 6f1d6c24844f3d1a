// internal/app/system/chartutil/stats.go
package chartutil

import "math"

// Summary holds a total count plus named subset counts. It is always fully
// populated: a missing predicate name simply reads as zero.
type Summary struct {
	Total  int
	Counts map[string]int
}

// Count returns a named subset count, zero when the name is unknown.
func (s Summary) Count(name string) int {
	return s.Counts[name]
}

// RateOf returns the named subset as a percentage of the total.
func (s Summary) RateOf(name string) float64 {
	return Rate(s.Count(name), s.Total)
}

// ComputeStats counts records overall and per named predicate.
func ComputeStats[T any](records []T, predicates map[string]func(T) bool) Summary {
	out := Summary{
		Total:  len(records),
		Counts: make(map[string]int, len(predicates)),
	}
	for name, pred := range predicates {
		n := 0
		for _, rec := range records {
			if pred(rec) {
				n++
			}
		}
		out.Counts[name] = n
	}
	return out
}

// Rate returns part/total as a percentage rounded to one decimal place.
// A zero total yields exactly 0, and any non-finite intermediate value is
// coerced to 0: callers never see NaN or Inf, and the result is always
// within [0, 100] for part <= total.
func Rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	r := float64(part) / float64(total) * 100
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return math.Round(r*10) / 10
}
