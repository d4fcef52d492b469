package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// 20 октября 2025 - понедельник
var monday = msktime.Date{Year: 2025, Month: time.October, Day: 20}

func window(weekday time.Weekday, start, end types.TimeString) *domain.WeeklyScheduleSlot {
	return &domain.WeeklyScheduleSlot{
		SpecialistID: 7,
		Weekday:      weekday,
		StartLocal:   start,
		EndLocal:     end,
		IsActive:     true,
	}
}

func booking(start time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		SpecialistID: 7,
		StartTime:    start,
		EndTime:      start.Add(domain.SlotDuration),
		Status:       status,
	}
}

func msk(date msktime.Date, hour int) time.Time {
	return date.At(hour, 0)
}

// неделей раньше: все слоты в будущем
var longAgo = time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)

func TestDaySlots_NoSchedule(t *testing.T) {
	assert.Empty(t, DaySlots(monday, nil, nil, longAgo))

	inactive := window(time.Monday, "09:00", "12:00")
	inactive.IsActive = false
	assert.Empty(t, DaySlots(monday, inactive, nil, longAgo))
}

func TestDaySlots_TrailingBoundaryExcluded(t *testing.T) {
	slots := DaySlots(monday, window(time.Monday, "09:00", "12:00"), nil, longAgo)

	assert.Equal(t, []time.Time{
		time.Date(2025, time.October, 20, 6, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 20, 7, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 20, 8, 0, 0, 0, time.UTC),
	}, slots)
}

func TestDaySlots_BookedSlotSuppressed(t *testing.T) {
	w := window(time.Monday, "09:00", "12:00")

	confirmed := DaySlots(monday, w, []*domain.Booking{booking(msk(monday, 10), domain.StatusConfirmed)}, longAgo)
	assert.Equal(t, []time.Time{msk(monday, 9), msk(monday, 11)}, confirmed)

	completed := DaySlots(monday, w, []*domain.Booking{booking(msk(monday, 10), domain.StatusCompleted)}, longAgo)
	assert.Equal(t, []time.Time{msk(monday, 9), msk(monday, 11)}, completed)

	cancelled := DaySlots(monday, w, []*domain.Booking{booking(msk(monday, 10), domain.StatusCancelled)}, longAgo)
	assert.Equal(t, []time.Time{msk(monday, 9), msk(monday, 10), msk(monday, 11)}, cancelled)
}

func TestDaySlots_MembershipNotRange(t *testing.T) {
	// бронирование в 10:30 не занимает ни 10:00, ни 11:00
	offGrid := booking(monday.At(10, 30), domain.StatusConfirmed)

	slots := DaySlots(monday, window(time.Monday, "09:00", "12:00"), []*domain.Booking{offGrid}, longAgo)
	assert.Len(t, slots, 3)
}

func TestDaySlots_PastSlotsExcluded(t *testing.T) {
	w := window(time.Monday, "09:00", "12:00")

	tests := []struct {
		name string
		now  time.Time
		want []time.Time
	}{
		{name: "mid slot", now: monday.At(10, 30), want: []time.Time{msk(monday, 11)}},
		{name: "exactly at slot start", now: msk(monday, 10), want: []time.Time{msk(monday, 11)}},
		{name: "before window", now: monday.At(8, 59), want: []time.Time{msk(monday, 9), msk(monday, 10), msk(monday, 11)}},
		{name: "after window", now: monday.At(12, 0), want: []time.Time{}},
		{name: "day after", now: monday.AddDays(1).At(9, 0), want: []time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaySlots(monday, w, nil, tt.now))
		})
	}
}

func TestDaySlots_LocalDaySpansTwoUTCDays(t *testing.T) {
	// 00:00-03:00 МСК понедельника = 21:00-24:00 UTC воскресенья
	w := window(time.Monday, "00:00", "03:00")
	sundayEvening := time.Date(2025, time.October, 19, 21, 0, 0, 0, time.UTC)

	slots := DaySlots(monday, w, []*domain.Booking{booking(sundayEvening, domain.StatusConfirmed)}, longAgo)

	assert.Equal(t, []time.Time{
		time.Date(2025, time.October, 19, 22, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 19, 23, 0, 0, 0, time.UTC),
	}, slots)
}

func TestDaySlots_WindowEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
		want  int
	}{
		{name: "not aligned keeps whole hours only", start: "09:30", end: "12:00", want: 2},
		{name: "partial trailing hour dropped", start: "09:00", end: "11:30", want: 2},
		{name: "zero length", start: "10:00", end: "10:00", want: 0},
		{name: "inverted", start: "17:00", end: "09:00", want: 0},
		{name: "shorter than an hour", start: "10:00", end: "10:45", want: 0},
		{name: "not aligned without a whole hour inside", start: "09:30", end: "10:30", want: 0},
		{name: "full day", start: "00:00", end: "23:00", want: 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := window(time.Monday, tt.start, tt.end)

			assert.Len(t, DaySlots(monday, w, nil, longAgo), tt.want)
			assert.Equal(t, tt.want, Capacity(*w))
		})
	}
}

func TestDaySlots_NotAlignedWindowUsesHourGrid(t *testing.T) {
	slots := DaySlots(monday, window(time.Monday, "09:30", "12:00"), nil, longAgo)

	assert.Equal(t, []time.Time{msk(monday, 10), msk(monday, 11)}, slots)
	for _, slot := range slots {
		assert.True(t, slot.Equal(slot.Truncate(domain.SlotDuration)))
	}

	assert.Empty(t, DaySlots(monday, window(time.Monday, "09:30", "10:30"), nil, longAgo))
	assert.True(t, IsSlotStart(monday, *window(time.Monday, "09:30", "12:00"), msk(monday, 10)))
	assert.False(t, IsSlotStart(monday, *window(time.Monday, "09:30", "12:00"), monday.At(9, 30)))
}

func TestDaySlots_Idempotent(t *testing.T) {
	w := window(time.Monday, "09:00", "17:00")
	bookings := []*domain.Booking{booking(msk(monday, 13), domain.StatusConfirmed)}
	now := monday.At(9, 15)

	first := DaySlots(monday, w, bookings, now)
	second := DaySlots(monday, w, bookings, now)

	assert.Equal(t, first, second)
	assert.Len(t, first, 6)
}

func TestDaySlots_Ascending(t *testing.T) {
	slots := DaySlots(monday, window(time.Monday, "08:00", "20:00"), nil, longAgo)
	require.Len(t, slots, 12)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i].After(slots[i-1]))
	}
}

func TestIsSlotStart(t *testing.T) {
	w := *window(time.Monday, "09:00", "12:00")

	assert.True(t, IsSlotStart(monday, w, msk(monday, 11)))
	assert.False(t, IsSlotStart(monday, w, msk(monday, 12)))
	assert.False(t, IsSlotStart(monday, w, monday.At(9, 30)))
	assert.False(t, IsSlotStart(monday.AddDays(1), w, msk(monday, 9)))
}

func mondaySchedule(start, end types.TimeString) domain.WeeklySchedule {
	return domain.NewWeeklySchedule([]domain.WeeklyScheduleSlot{*window(time.Monday, start, end)})
}

func containsDate(dates []msktime.Date, d msktime.Date) bool {
	for _, date := range dates {
		if date == d {
			return true
		}
	}
	return false
}

func TestFullDays_InactiveWeekdaysAreFull(t *testing.T) {
	full := FullDays(2025, time.October, mondaySchedule("09:00", "12:00"), nil)

	// в октябре 2025 четыре понедельника: 6, 13, 20, 27
	assert.Len(t, full, 31-4)
	assert.False(t, containsDate(full, monday))
	assert.True(t, containsDate(full, monday.AddDays(1)))
}

func TestFullDays_CountThreshold(t *testing.T) {
	schedule := mondaySchedule("09:00", "12:00")

	two := []*domain.Booking{
		booking(msk(monday, 9), domain.StatusConfirmed),
		booking(msk(monday, 10), domain.StatusConfirmed),
	}
	assert.False(t, containsDate(FullDays(2025, time.October, schedule, two), monday))

	three := append(two, booking(msk(monday, 11), domain.StatusCompleted))
	assert.True(t, containsDate(FullDays(2025, time.October, schedule, three), monday))

	withCancelled := append(two, booking(msk(monday, 11), domain.StatusCancelled))
	assert.False(t, containsDate(FullDays(2025, time.October, schedule, withCancelled), monday))
}

func TestFullDays_GroupsByMoscowDate(t *testing.T) {
	schedule := mondaySchedule("00:00", "02:00")
	lastMonday := msktime.Date{Year: 2025, Month: time.October, Day: 27}

	// 26 октября 21:00 и 22:00 UTC - это уже 27 октября по МСК
	bookings := []*domain.Booking{
		booking(time.Date(2025, time.October, 26, 21, 0, 0, 0, time.UTC), domain.StatusConfirmed),
		booking(time.Date(2025, time.October, 26, 22, 0, 0, 0, time.UTC), domain.StatusConfirmed),
	}

	full := FullDays(2025, time.October, schedule, bookings)
	assert.True(t, containsDate(full, lastMonday))
	assert.False(t, containsDate(full, monday))
}

func TestFullDays_EmptyScheduleMarksWholeMonth(t *testing.T) {
	full := FullDays(2024, time.February, domain.NewWeeklySchedule(nil), nil)

	require.Len(t, full, 29)
	assert.Equal(t, msktime.Date{Year: 2024, Month: time.February, Day: 1}, full[0])
	assert.Equal(t, msktime.Date{Year: 2024, Month: time.February, Day: 29}, full[28])
}
