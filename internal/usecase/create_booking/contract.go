package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ExistsActiveAt(ctx context.Context, specialistID int64, startTime time.Time) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetActiveByWeekday(ctx context.Context, specialistID int64, weekday time.Weekday) (*domain.WeeklyScheduleSlot, error)
}

// SpecialistRepository интерфейс репозитория пользователей
type SpecialistRepository interface {
	GetSpecialistByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправляет уведомления о новом бронировании
// Реализация не блокирует вызывающего и сама обрабатывает ошибки доставки
type Notifier interface {
	NotifyBookingCreated(booking *domain.Booking, specialist *domain.User)
}

// Metrics счетчики бронирований
type Metrics interface {
	IncBookingCreated()
	IncBookingConflict(stage string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
