package specialists

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// SpecialistRepository интерфейс репозитория пользователей
type SpecialistRepository interface {
	GetSpecialistByID(ctx context.Context, id int64) (*domain.User, error)
	ListSpecialists(ctx context.Context) ([]*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
