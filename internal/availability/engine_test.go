package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

func newTestEngine(opts ...Option) *Engine {
	return NewEngine(DefaultRuleSet(), opts...)
}

func TestBlockedHours_PerServiceRules(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name     string
		services []string
		start    int
		duration int
		want     []int
	}{
		{"bridal makeup blocks whole day", []string{"bridal-makeup"}, 15, 0, []int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18}},
		{"lash lift single hour", []string{"lash-lift"}, 14, 5, []int{14}},
		{"brow lift single hour", []string{"brow-lift"}, 14, 0, []int{14}},
		{"threading single hour", []string{"threading"}, 14, 0, []int{14}},
		{"makeup three hours", []string{"makeup"}, 9, 7, []int{9, 10, 11}},
		{"mehendi uses duration", []string{"mehendi"}, 10, 3, []int{10, 11, 12}},
		{"mehendi zero duration floors to one", []string{"mehendi"}, 10, 0, []int{10}},
		{"mehendi negative duration floors to one", []string{"mehendi"}, 10, -2, []int{10}},
		{"unknown service ignored", []string{"nail-art"}, 10, 0, []int{}},
		{"same start collapses", []string{"lash-lift", "brow-lift"}, 10, 0, []int{10}},
		{"union of rules", []string{"threading", "makeup"}, 12, 0, []int{12, 13, 14}},
		{"duplicates have no effect", []string{"makeup", "makeup"}, 10, 0, []int{10, 11, 12}},
		{"not clipped to closing time", []string{"makeup"}, 17, 0, []int{17, 18, 19}},
		{"hours outside range tolerated", []string{"lash-lift"}, 3, 0, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.BlockedHours(tt.services, tt.start, tt.duration)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestBlockedHours_NonEmptyForRecognizedService(t *testing.T) {
	e := newTestEngine()

	for _, rule := range domain.DefaultServiceRules() {
		for start := 0; start < 24; start++ {
			got := e.BlockedHours([]string{rule.ServiceID}, start, 0)
			assert.NotZero(t, got.Len(), "service=%s start=%d", rule.ServiceID, start)
		}
	}
}

func TestBlockedHours_Idempotent(t *testing.T) {
	e := newTestEngine()
	services := []string{"makeup", "mehendi", "threading"}

	first := e.BlockedHours(services, 11, 4)
	second := e.BlockedHours(services, 11, 4)

	assert.Equal(t, first, second)
}

func TestCheckConflict_EmptyExistingAlwaysAvailable(t *testing.T) {
	e := newTestEngine()

	for _, rule := range domain.DefaultServiceRules() {
		for start := domain.DefaultOpenHour; start <= domain.DefaultCloseHour; start++ {
			res, err := e.CheckConflict(Slot{Services: []string{rule.ServiceID}, StartHour: start, DurationHours: 2}, nil)
			require.NoError(t, err)
			assert.True(t, res.Available, "service=%s start=%d", rule.ServiceID, start)
		}
	}
}

func TestCheckConflict_Symmetric(t *testing.T) {
	e := newTestEngine()

	pairs := []struct {
		name string
		a    Slot
		b    Slot
	}{
		{"makeup overlaps lash lift", Slot{Services: []string{"makeup"}, StartHour: 10}, Slot{Services: []string{"lash-lift"}, StartHour: 12}},
		{"mehendi overlaps makeup", Slot{Services: []string{"mehendi"}, StartHour: 9, DurationHours: 4}, Slot{Services: []string{"makeup"}, StartHour: 12}},
		{"bridal overlaps anything", Slot{Services: []string{"bridal-makeup"}, StartHour: 9}, Slot{Services: []string{"threading"}, StartHour: 17}},
		{"same hour", Slot{Services: []string{"brow-lift"}, StartHour: 15}, Slot{Services: []string{"threading"}, StartHour: 15}},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			ab, err := e.CheckConflict(p.a, []Slot{p.b})
			require.NoError(t, err)
			ba, err := e.CheckConflict(p.b, []Slot{p.a})
			require.NoError(t, err)

			assert.False(t, ab.Available)
			assert.False(t, ba.Available)
		})
	}
}

func TestCheckConflict_AdjacentBlocksDoNotConflict(t *testing.T) {
	e := newTestEngine()

	res, err := e.CheckConflict(
		Slot{Services: []string{"lash-lift"}, StartHour: 12},
		[]Slot{{Services: []string{"makeup"}, StartHour: 9}},
	)

	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestCheckConflict_BridalMakeupDominates(t *testing.T) {
	e := newTestEngine()
	existing := []Slot{{BookingID: 7, Services: []string{"bridal-makeup"}, StartHour: 9}}

	for hour := domain.DefaultOpenHour; hour <= domain.DefaultCloseHour; hour++ {
		res, err := e.CheckConflict(Slot{Services: []string{"lash-lift"}, StartHour: hour}, existing)
		require.NoError(t, err)
		assert.False(t, res.Available, "hour=%d", hour)
		assert.Equal(t, hour, res.ConflictingHour)
		assert.Equal(t, "bridal-makeup", res.ConflictingService)
		assert.Equal(t, int64(7), res.ConflictingBookingID)
	}
}

func TestCheckConflict_ReportsSmallestHourAndFirstService(t *testing.T) {
	e := newTestEngine()
	existing := []Slot{
		{BookingID: 1, Services: []string{"threading"}, StartHour: 9},
		{BookingID: 2, Services: []string{"brow-lift", "makeup"}, StartHour: 11},
	}

	res, err := e.CheckConflict(Slot{Services: []string{"mehendi"}, StartHour: 10, DurationHours: 4}, existing)

	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Equal(t, 11, res.ConflictingHour)
	assert.Equal(t, "brow-lift", res.ConflictingService)
	assert.Equal(t, int64(2), res.ConflictingBookingID)
}

func TestCheckConflict_UnknownCandidateServices(t *testing.T) {
	existing := []Slot{{Services: []string{"makeup"}, StartHour: 10}}
	candidate := Slot{Services: []string{"nail-art"}, StartHour: 10}

	t.Run("lenient ignores and reports", func(t *testing.T) {
		var reported []string
		e := newTestEngine(WithUnknownServiceHook(func(id string) { reported = append(reported, id) }))

		res, err := e.CheckConflict(candidate, existing)

		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, []string{"nail-art"}, reported)
	})

	t.Run("strict rejects", func(t *testing.T) {
		e := newTestEngine(WithStrictServices(true))

		_, err := e.CheckConflict(candidate, existing)

		assert.ErrorIs(t, err, ErrUnknownService)
	})

	t.Run("strict tolerates unknown services in stored bookings", func(t *testing.T) {
		e := newTestEngine(WithStrictServices(true))

		res, err := e.CheckConflict(
			Slot{Services: []string{"lash-lift"}, StartHour: 10},
			[]Slot{{Services: []string{"retired-service"}, StartHour: 10}},
		)

		require.NoError(t, err)
		assert.True(t, res.Available)
	})
}

func TestAvailableHours_Complement(t *testing.T) {
	e := newTestEngine()

	res, err := e.AvailableHours(Slot{}, []Slot{{Services: []string{"makeup"}, StartHour: 9}})

	require.NoError(t, err)
	assert.Equal(t, []int{12, 13, 14, 15, 16, 17, 18}, res.AvailableHours)
	assert.ElementsMatch(t, []int{9, 10, 11}, res.UnavailableHours)
}

func TestAvailableHours_NoBookings(t *testing.T) {
	e := newTestEngine()

	res, err := e.AvailableHours(Slot{Services: []string{"makeup"}}, nil)

	require.NoError(t, err)
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18}, res.AvailableHours)
	assert.Empty(t, res.UnavailableHours)
}

func TestAvailableHours_CandidateDurationDoesNotNarrow(t *testing.T) {
	e := newTestEngine()

	res, err := e.AvailableHours(Slot{Services: []string{"makeup"}, StartHour: 17}, nil)

	require.NoError(t, err)
	assert.Contains(t, res.AvailableHours, 17)
	assert.Contains(t, res.AvailableHours, 18)
}

func TestAvailableHours_BlocksPastClosingAreReported(t *testing.T) {
	e := newTestEngine()

	res, err := e.AvailableHours(Slot{}, []Slot{{Services: []string{"makeup"}, StartHour: 17}})

	require.NoError(t, err)
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16}, res.AvailableHours)
	assert.Equal(t, []int{17, 18, 19}, res.UnavailableHours)
}

func TestAvailableHours_BridalMakeupClosesDay(t *testing.T) {
	e := newTestEngine()

	res, err := e.AvailableHours(Slot{}, []Slot{{Services: []string{"bridal-makeup"}, StartHour: 9}})

	require.NoError(t, err)
	assert.Empty(t, res.AvailableHours)
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16, 17, 18}, res.UnavailableHours)
}

func TestAvailableHours_StrictUnknownCandidate(t *testing.T) {
	e := newTestEngine(WithStrictServices(true))

	_, err := e.AvailableHours(Slot{Services: []string{"nail-art"}}, nil)

	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestEngine_CustomOperatingHours(t *testing.T) {
	e := newTestEngine(WithOperatingHours(domain.OperatingHours{Open: 10, Close: 12}))

	blocked := e.BlockedHours([]string{"bridal-makeup"}, 0, 0)
	assert.Equal(t, []int{10, 11, 12}, blocked.Sorted())

	res, err := e.AvailableHours(Slot{}, []Slot{{Services: []string{"lash-lift"}, StartHour: 11}})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 12}, res.AvailableHours)
}

func TestEngine_CustomRules(t *testing.T) {
	rules := DefaultRuleSet()
	rules["nail-art"] = Rule{Kind: domain.RuleFixed, BlockHours: 2}
	e := NewEngine(rules)

	assert.Equal(t, []int{13, 14}, e.BlockedHours([]string{"nail-art"}, 13, 0).Sorted())
	assert.Empty(t, e.UnknownServices([]string{"nail-art", "makeup"}))
}

func TestSlotFromBooking(t *testing.T) {
	b := &domain.Booking{
		ID:            3,
		StartTime:     "not-a-time",
		Services:      []string{"mehendi"},
		DurationHours: 2,
	}

	slot := SlotFromBooking(b)

	assert.Equal(t, Slot{BookingID: 3, Services: []string{"mehendi"}, StartHour: 0, DurationHours: 2}, slot)
}

func TestHourSet_FirstCommon(t *testing.T) {
	a := NewHourSet(12, 10, 14)
	b := NewHourSet(14, 12, 20)

	hour, ok := a.FirstCommon(b)
	assert.True(t, ok)
	assert.Equal(t, 12, hour)

	_, ok = a.FirstCommon(NewHourSet(1, 2))
	assert.False(t, ok)
	assert.False(t, a.Intersects(NewHourSet()))
}
