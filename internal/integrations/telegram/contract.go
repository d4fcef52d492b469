package telegram

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Linker привязывает чат к аккаунту по коду
type Linker interface {
	LinkChat(ctx context.Context, code string, chatID int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
