package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_NotesOrDefault(t *testing.T) {
	notes := "Разбор резюме"
	empty := ""

	assert.Equal(t, notes, (&Booking{Notes: &notes}).NotesOrDefault(DefaultNotes))
	assert.Equal(t, DefaultNotes, (&Booking{Notes: &empty}).NotesOrDefault(DefaultNotes))
	assert.Equal(t, DefaultNotes, (&Booking{}).NotesOrDefault(DefaultNotes))
}

func TestNewWeeklySchedule(t *testing.T) {
	schedule := NewWeeklySchedule([]WeeklyScheduleSlot{
		{Weekday: time.Monday, StartLocal: "09:00", EndLocal: "12:00", IsActive: true},
		{Weekday: time.Tuesday, StartLocal: "09:00", EndLocal: "12:00", IsActive: false},
	})

	monday, ok := schedule.ForWeekday(time.Monday)
	assert.True(t, ok)
	assert.Equal(t, "09:00", monday.StartLocal.String())

	_, ok = schedule.ForWeekday(time.Tuesday)
	assert.False(t, ok)

	_, ok = schedule.ForWeekday(time.Sunday)
	assert.False(t, ok)
}

func TestIdentity_CanManage(t *testing.T) {
	specialist := Identity{UserID: 5, Role: RoleSpecialist}
	admin := Identity{UserID: 1, Role: RoleAdmin}

	assert.True(t, specialist.CanManage(5))
	assert.False(t, specialist.CanManage(6))
	assert.True(t, admin.CanManage(6))
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, BookingStatus("pending").IsValid())
}
