package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// Slot is the part of a booking the engine looks at
type Slot struct {
	BookingID     int64
	Services      []string
	StartHour     int
	DurationHours int
}

// SlotFromBooking extracts the engine view of a stored booking
func SlotFromBooking(b *domain.Booking) Slot {
	return Slot{
		BookingID:     b.ID,
		Services:      b.Services,
		StartHour:     b.StartHour(),
		DurationHours: b.DurationHours,
	}
}

// SlotsFromBookings converts a date-scoped list of bookings preserving order
func SlotsFromBookings(bookings []*domain.Booking) []Slot {
	slots := make([]Slot, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, SlotFromBooking(b))
	}
	return slots
}

// ConflictResult is the verdict of CheckConflict.
// ConflictingHour, ConflictingService and ConflictingBookingID are set only when Available is false.
type ConflictResult struct {
	Available            bool
	ConflictingHour      int
	ConflictingService   string
	ConflictingBookingID int64
}

// Availability lists free and occupied hours of a day, both ascending
type Availability struct {
	AvailableHours   []int
	UnavailableHours []int
}

// Option configures an Engine
type Option func(*Engine)

// WithOperatingHours overrides the 9..18 schedule
func WithOperatingHours(hours domain.OperatingHours) Option {
	return func(e *Engine) {
		e.hours = hours
	}
}

// WithStrictServices rejects candidate services that have no rule
func WithStrictServices(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithUnknownServiceHook is called for every candidate service without a rule in lenient mode
func WithUnknownServiceHook(hook func(serviceID string)) Option {
	return func(e *Engine) {
		e.onUnknown = hook
	}
}

// Engine evaluates hour blocking and conflicts for one day.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	rules     RuleSet
	hours     domain.OperatingHours
	strict    bool
	onUnknown func(serviceID string)
}

// NewEngine creates an engine over the given rules
func NewEngine(rules RuleSet, opts ...Option) *Engine {
	e := &Engine{
		rules: rules,
		hours: domain.DefaultOperatingHours(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OperatingHours returns the schedule the engine reports against
func (e *Engine) OperatingHours() domain.OperatingHours {
	return e.hours
}

// Strict reports whether unknown candidate services are rejected
func (e *Engine) Strict() bool {
	return e.strict
}

// BlockedHours returns the union of the hours blocked by every known service.
// Unknown identifiers contribute nothing.
func (e *Engine) BlockedHours(services []string, startHour, durationHours int) HourSet {
	blocked := make(HourSet)
	for _, id := range services {
		rule, ok := e.rules.Lookup(id)
		if !ok {
			continue
		}
		blocked.Add(rule.Block(startHour, durationHours, e.hours)...)
	}
	return blocked
}

// UnknownServices returns the identifiers that have no rule, in input order without repeats
func (e *Engine) UnknownServices(services []string) []string {
	var unknown []string
	seen := make(map[string]struct{})
	for _, id := range services {
		if _, ok := e.rules.Lookup(id); ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unknown = append(unknown, id)
	}
	return unknown
}

// CheckConflict reports whether candidate overlaps any of existing.
// existing must already be limited to the candidate's date.
func (e *Engine) CheckConflict(candidate Slot, existing []Slot) (ConflictResult, error) {
	if err := e.checkCandidate(candidate.Services); err != nil {
		return ConflictResult{}, err
	}

	candidateBlocked := e.BlockedHours(candidate.Services, candidate.StartHour, candidate.DurationHours)
	if candidateBlocked.Len() == 0 {
		return ConflictResult{Available: true}, nil
	}

	for _, slot := range existing {
		blocked := e.BlockedHours(slot.Services, slot.StartHour, slot.DurationHours)
		hour, ok := candidateBlocked.FirstCommon(blocked)
		if !ok {
			continue
		}

		conflictingService := ""
		if len(slot.Services) > 0 {
			conflictingService = slot.Services[0]
		}
		return ConflictResult{
			Available:            false,
			ConflictingHour:      hour,
			ConflictingService:   conflictingService,
			ConflictingBookingID: slot.BookingID,
		}, nil
	}

	return ConflictResult{Available: true}, nil
}

// AvailableHours returns the operating hours not blocked by existing bookings.
// The candidate is validated but its own duration does not narrow the result.
func (e *Engine) AvailableHours(candidate Slot, existing []Slot) (Availability, error) {
	if err := e.checkCandidate(candidate.Services); err != nil {
		return Availability{}, err
	}

	unavailable := make(HourSet)
	for _, slot := range existing {
		unavailable.Add(e.BlockedHours(slot.Services, slot.StartHour, slot.DurationHours).Sorted()...)
	}

	all := e.hours.All()
	available := make([]int, 0, len(all))
	for _, hour := range all {
		if !unavailable.Has(hour) {
			available = append(available, hour)
		}
	}

	return Availability{
		AvailableHours:   available,
		UnavailableHours: unavailable.Sorted(),
	}, nil
}

func (e *Engine) checkCandidate(services []string) error {
	unknown := e.UnknownServices(services)
	if len(unknown) == 0 {
		return nil
	}
	if e.strict {
		return fmt.Errorf("%w: %v", ErrUnknownService, unknown)
	}
	if e.onUnknown != nil {
		for _, id := range unknown {
			e.onUnknown(id)
		}
	}
	return nil
}
