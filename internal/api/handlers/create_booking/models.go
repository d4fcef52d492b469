package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SpecialistID  int64   `json:"specialistId"`
	ClientName    string  `json:"clientName"`
	ClientContact string  `json:"clientContact"`
	StartTime     string  `json:"startTime"` // ISO-8601, "2025-10-20T11:00:00Z"
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	SpecialistID   int64   `json:"specialistId"`
	SpecialistName string  `json:"specialistName"`
	ClientName     string  `json:"clientName"`
	ClientContact  string  `json:"clientContact"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		SpecialistID:  r.SpecialistID,
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		StartTime:     startTime,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		SpecialistID:   resp.SpecialistID,
		SpecialistName: resp.SpecialistName,
		ClientName:     resp.ClientName,
		ClientContact:  resp.ClientContact,
		StartTime:      resp.StartTime.UTC().Format(time.RFC3339),
		EndTime:        resp.EndTime.UTC().Format(time.RFC3339),
		Status:         resp.Status,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
