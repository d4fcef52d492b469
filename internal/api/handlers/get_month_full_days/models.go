package get_month_full_days

import (
	getMonthFullDays "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_month_full_days"
)

// MonthFullDaysResponse HTTP response model
type MonthFullDaysResponse struct {
	SpecialistID int64    `json:"specialistId"`
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	FullDays     []string `json:"fullDays"` // "YYYY-MM-DD", по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthFullDays.Response) *MonthFullDaysResponse {
	days := make([]string, 0, len(resp.FullDays))
	for _, d := range resp.FullDays {
		days = append(days, d.String())
	}

	return &MonthFullDaysResponse{
		SpecialistID: resp.SpecialistID,
		Year:         resp.Year,
		Month:        int(resp.Month),
		FullDays:     days,
	}
}
