package availability

import "sort"

// HourSet is the set of integer hours a booking occupies
type HourSet map[int]struct{}

// NewHourSet builds a set from the given hours
func NewHourSet(hours ...int) HourSet {
	s := make(HourSet, len(hours))
	for _, h := range hours {
		s[h] = struct{}{}
	}
	return s
}

// Add inserts hours into the set
func (s HourSet) Add(hours ...int) {
	for _, h := range hours {
		s[h] = struct{}{}
	}
}

// Has reports whether hour is in the set
func (s HourSet) Has(hour int) bool {
	_, ok := s[hour]
	return ok
}

// Len returns the number of hours in the set
func (s HourSet) Len() int {
	return len(s)
}

// Sorted returns the hours in ascending order
func (s HourSet) Sorted() []int {
	hours := make([]int, 0, len(s))
	for h := range s {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// FirstCommon returns the smallest hour present in both sets
func (s HourSet) FirstCommon(other HourSet) (int, bool) {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	found := false
	first := 0
	for h := range small {
		if !large.Has(h) {
			continue
		}
		if !found || h < first {
			first = h
			found = true
		}
	}
	return first, found
}

// Intersects reports whether the sets share at least one hour
func (s HourSet) Intersects(other HourSet) bool {
	_, ok := s.FirstCommon(other)
	return ok
}
