package get_day_slots

import (
	"time"

	getDaySlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	SpecialistID int64    `json:"specialistId"`
	Date         string   `json:"date"`  // "2025-10-20", московская дата
	Slots        []string `json:"slots"` // ISO 8601 в UTC, по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.UTC().Format(time.RFC3339))
	}

	return &DaySlotsResponse{
		SpecialistID: resp.SpecialistID,
		Date:         resp.Date.String(),
		Slots:        slots,
	}
}
