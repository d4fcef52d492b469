package get_month_full_days

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetBySpecialist(ctx context.Context, specialistID int64, activeOnly bool) ([]domain.WeeklyScheduleSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// SpecialistRepository интерфейс репозитория пользователей
type SpecialistRepository interface {
	GetSpecialistByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
