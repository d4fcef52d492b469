package schedules

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedules/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
	"github.com/m04kA/SMC-SchedulingService/pkg/validation"
)

// validateScheduleRequest проверяет формат строк, порядок границ окна и уникальность дней
// Неактивные строки тоже проверяются, чтобы клиент не сохранял мусор
func validateScheduleRequest(v *validator.Validate, req *models.ReplaceScheduleRequest) error {
	if err := v.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	seen := make(map[int]bool, len(req.Days))
	for _, d := range req.Days {
		if seen[d.DayOfWeek] {
			return fmt.Errorf("%w: duplicate day of week %d", ErrInvalidInput, d.DayOfWeek)
		}
		seen[d.DayOfWeek] = true

		if !types.TimeString(d.StartTime).IsBefore(types.TimeString(d.EndTime)) {
			return fmt.Errorf("%w: day %d: start %s must be before end %s", ErrInvalidInput, d.DayOfWeek, d.StartTime, d.EndTime)
		}
	}

	return nil
}
