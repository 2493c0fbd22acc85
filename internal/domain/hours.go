package domain

import "fmt"

// OperatingHours is the inclusive range of bookable hours of a day
type OperatingHours struct {
	Open  int
	Close int
}

// DefaultOperatingHours returns the 9..18 schedule
func DefaultOperatingHours() OperatingHours {
	return OperatingHours{Open: DefaultOpenHour, Close: DefaultCloseHour}
}

// Validate checks that the range is non-empty and fits in a day
func (h OperatingHours) Validate() error {
	if h.Open < 0 || h.Close > 23 || h.Open > h.Close {
		return fmt.Errorf("invalid operating hours %d..%d", h.Open, h.Close)
	}
	return nil
}

// Contains reports whether hour is a bookable hour
func (h OperatingHours) Contains(hour int) bool {
	return hour >= h.Open && hour <= h.Close
}

// All returns every bookable hour in ascending order
func (h OperatingHours) All() []int {
	if h.Open > h.Close {
		return []int{}
	}
	hours := make([]int, 0, h.Close-h.Open+1)
	for hour := h.Open; hour <= h.Close; hour++ {
		hours = append(hours, hour)
	}
	return hours
}
