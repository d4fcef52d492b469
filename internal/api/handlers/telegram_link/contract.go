package telegram_link

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/telegramlink/models"
)

type LinkService interface {
	Status(ctx context.Context, identity domain.Identity) (*models.LinkStatusResponse, error)
	Regenerate(ctx context.Context, identity domain.Identity) (*models.LinkStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
