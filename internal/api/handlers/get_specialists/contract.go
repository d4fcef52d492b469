package get_specialists

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/specialists/models"
)

type SpecialistService interface {
	List(ctx context.Context) (*models.SpecialistListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.SpecialistResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
