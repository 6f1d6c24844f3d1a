// internal/app/system/chartutil/series.go

// Package chartutil turns record slices into chart-ready label/value series
// and summary statistics. Everything here is pure: no I/O, no stored state,
// and partial results are acceptable. A record that cannot be categorized
// is skipped, never fatal.
package chartutil

// Series is an ordered pair of labels and non-negative counts feeding a
// chart's visual encoding. It is derived per call and never cached.
type Series struct {
	Labels []string
	Values []int
}

// Empty reports whether the series carries no counts at all. An empty
// chart is worse than no chart, so renderers skip empty series.
func (s Series) Empty() bool {
	return s.Total() == 0
}

// Total returns the sum of all values.
func (s Series) Total() int {
	total := 0
	for _, v := range s.Values {
		total += v
	}
	return total
}

// KeyFunc computes the category for a record. Returning an error marks the
// record as malformed; the aggregation skips it and moves on.
type KeyFunc[T any] func(T) (string, error)

// CountByKey builds a histogram of records by category. Label order follows
// first-seen insertion order among the surviving records, which keeps chart
// segments stable for a given data ordering without imposing an enum order
// the data may not have.
//
// Records whose key function fails are skipped; the count of skipped
// records is returned so callers can log it.
func CountByKey[T any](records []T, key KeyFunc[T]) (Series, int) {
	var s Series
	index := make(map[string]int)
	skipped := 0

	for _, rec := range records {
		k, err := key(rec)
		if err != nil {
			skipped++
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(s.Labels)
			index[k] = i
			s.Labels = append(s.Labels, k)
			s.Values = append(s.Values, 0)
		}
		s.Values[i]++
	}
	return s, skipped
}

// FixedCountByKey builds a histogram over a fixed, always-present label
// set. Labels with no matching records stay at zero, preserving a stable
// layout (the task chart always shows its three priority bars). Keys
// outside the label set are silently not counted: neither remapped to a
// default bucket nor treated as malformed.
func FixedCountByKey[T any](records []T, key KeyFunc[T], labels []string) (Series, int) {
	s := Series{
		Labels: make([]string, len(labels)),
		Values: make([]int, len(labels)),
	}
	copy(s.Labels, labels)

	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	skipped := 0
	for _, rec := range records {
		k, err := key(rec)
		if err != nil {
			skipped++
			continue
		}
		if i, ok := index[k]; ok {
			s.Values[i]++
		}
	}
	return s, skipped
}
