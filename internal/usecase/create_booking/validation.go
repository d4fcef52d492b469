package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SchedulingService/internal/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
	"github.com/m04kA/SMC-SchedulingService/pkg/validation"
)

// normalizeRequest обрезает пробелы в строковых полях
func normalizeRequest(req *Request) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientContact = strings.TrimSpace(req.ClientContact)
	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if notes == "" {
			req.Notes = nil
		} else {
			req.Notes = &notes
		}
	}
}

// validateRequest валидирует обязательные поля запроса
func validateRequest(v *validator.Validate, req *Request) error {
	if err := v.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	return nil
}

// validateStartTime проверяет, что момент выровнен по часу и еще не наступил
func validateStartTime(start, now time.Time) error {
	if !start.Equal(start.Truncate(domain.SlotDuration)) {
		return fmt.Errorf("%w: start time must be on a whole hour", ErrInvalidTimeSlot)
	}

	if !start.After(now) {
		return ErrSlotInPast
	}

	return nil
}

// validateAgainstSchedule проверяет, что момент является слотом активного окна на московскую дату
func validateAgainstSchedule(start time.Time, window *domain.WeeklyScheduleSlot) error {
	if window == nil {
		return fmt.Errorf("%w: specialist does not work on this day", ErrInvalidTimeSlot)
	}

	if !availability.IsSlotStart(msktime.DateOf(start), *window, start) {
		return fmt.Errorf("%w: outside working hours %s-%s", ErrInvalidTimeSlot, window.StartLocal, window.EndLocal)
	}

	return nil
}
