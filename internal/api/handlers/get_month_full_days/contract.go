package get_month_full_days

import (
	"context"

	getMonthFullDays "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_month_full_days"
)

type GetMonthFullDaysUseCase interface {
	Execute(ctx context.Context, req *getMonthFullDays.Request) (*getMonthFullDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
