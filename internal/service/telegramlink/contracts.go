package telegramlink

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByLinkCode(ctx context.Context, code string) (*domain.User, error)
	SetTelegramChatID(ctx context.Context, userID, chatID int64) error
	SetLinkCode(ctx context.Context, userID int64, code string, unlink bool) error
}

// CodeGenerator источник кодов привязки
type CodeGenerator func() string

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
