package get_month_full_days

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

type mockScheduleRepo struct{ mock.Mock }

func (m *mockScheduleRepo) GetBySpecialist(ctx context.Context, specialistID int64, activeOnly bool) ([]domain.WeeklyScheduleSlot, error) {
	args := m.Called(ctx, specialistID, activeOnly)
	slots, _ := args.Get(0).([]domain.WeeklyScheduleSlot)
	return slots, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

type mockSpecialistRepo struct{ mock.Mock }

func (m *mockSpecialistRepo) GetSpecialistByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_MarksFullDays(t *testing.T) {
	schedules := &mockScheduleRepo{}
	bookings := &mockBookingRepo{}
	specialists := &mockSpecialistRepo{}
	uc := NewUseCase(schedules, bookings, specialists, nopLogger{})
	ctx := context.Background()

	monday := msktime.Date{Year: 2025, Month: time.October, Day: 20}

	specialists.On("GetSpecialistByID", ctx, int64(7)).Return(&domain.User{ID: 7}, nil)
	schedules.On("GetBySpecialist", ctx, int64(7), true).Return([]domain.WeeklyScheduleSlot{
		{SpecialistID: 7, Weekday: time.Monday, StartLocal: "09:00", EndLocal: "12:00", IsActive: true},
		{SpecialistID: 7, Weekday: time.Tuesday, StartLocal: "09:00", EndLocal: "12:00", IsActive: true},
	}, nil)
	bookings.On("List", ctx, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		from, to := msktime.MonthRange(2025, time.October)
		return f.From.Equal(from) && f.To.Equal(to) && f.ActiveOnly
	})).Return([]*domain.Booking{
		{StartTime: monday.At(9, 0), Status: domain.StatusConfirmed},
		{StartTime: monday.At(10, 0), Status: domain.StatusConfirmed},
		{StartTime: monday.At(11, 0), Status: domain.StatusConfirmed},
		{StartTime: monday.AddDays(1).At(9, 0), Status: domain.StatusConfirmed},
		{StartTime: monday.AddDays(1).At(10, 0), Status: domain.StatusConfirmed},
	}, nil)

	resp, err := uc.Execute(ctx, &Request{SpecialistID: 7, Year: 2025, Month: time.October})
	require.NoError(t, err)

	assert.Contains(t, resp.FullDays, monday)
	assert.NotContains(t, resp.FullDays, monday.AddDays(1))
	// понедельников и вторников в октябре 2025 по четыре, заполнен только один из них
	assert.Len(t, resp.FullDays, 31-8+1)
	mock.AssertExpectationsForObjects(t, schedules, bookings, specialists)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{}, &mockBookingRepo{}, &mockSpecialistRepo{}, nopLogger{})

	tests := []Request{
		{SpecialistID: 0, Year: 2025, Month: time.October},
		{SpecialistID: 7, Year: 2025, Month: 0},
		{SpecialistID: 7, Year: 2025, Month: 13},
		{SpecialistID: 7, Year: 1900, Month: time.May},
	}

	for _, req := range tests {
		_, err := uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_SpecialistErrors(t *testing.T) {
	ctx := context.Background()

	specialists := &mockSpecialistRepo{}
	specialists.On("GetSpecialistByID", ctx, int64(404)).Return(nil, userRepo.ErrUserNotFound)
	specialists.On("GetSpecialistByID", ctx, int64(500)).Return(nil, errors.New("timeout"))
	uc := NewUseCase(&mockScheduleRepo{}, &mockBookingRepo{}, specialists, nopLogger{})

	_, err := uc.Execute(ctx, &Request{SpecialistID: 404, Year: 2025, Month: time.October})
	assert.ErrorIs(t, err, ErrSpecialistNotFound)

	_, err = uc.Execute(ctx, &Request{SpecialistID: 500, Year: 2025, Month: time.October})
	assert.ErrorIs(t, err, ErrInternal)
}
