package get_month_full_days

import (
	"fmt"
	"time"
)

const (
	minYear = 2000
	maxYear = 2100
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpecialistID <= 0 {
		return fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be in 1..12", ErrInvalidInput)
	}

	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: year must be in %d..%d", ErrInvalidInput, minYear, maxYear)
	}

	return nil
}
