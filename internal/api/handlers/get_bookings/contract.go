package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	ListMine(ctx context.Context, identity domain.Identity) (*models.BookingListResponse, error)
	ListAll(ctx context.Context, identity domain.Identity) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
