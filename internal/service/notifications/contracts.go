package notifications

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Sender канал доставки сообщений в чаты
type Sender interface {
	Enabled() bool
	SendMessage(ctx context.Context, chatID int64, html string) error
}

// AdminRepository источник администраторов с привязанным Telegram
type AdminRepository interface {
	ListAdminsWithTelegram(ctx context.Context) ([]*domain.User, error)
}

// Metrics счетчики уведомлений
type Metrics interface {
	IncNotification(kind string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
