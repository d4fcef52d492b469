package schedules

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetBySpecialist(ctx context.Context, specialistID int64, activeOnly bool) ([]domain.WeeklyScheduleSlot, error)
	DeleteBySpecialist(ctx context.Context, specialistID int64) error
	InsertBatch(ctx context.Context, slots []domain.WeeklyScheduleSlot) error
}

// SpecialistRepository интерфейс репозитория пользователей
type SpecialistRepository interface {
	GetSpecialistByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
