package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64     `json:"id"`
	SpecialistID   int64     `json:"specialistId"`
	SpecialistName string    `json:"specialistName,omitempty"`
	ClientName     string    `json:"clientName"`
	ClientContact  string    `json:"clientContact"`
	StartTime      time.Time `json:"startTime"` // RFC 3339, UTC
	EndTime        time.Time `json:"endTime"`
	Status         string    `json:"status"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		SpecialistID:   b.SpecialistID,
		SpecialistName: b.SpecialistName,
		ClientName:     b.ClientName,
		ClientContact:  b.ClientContact,
		StartTime:      b.StartTime.UTC(),
		EndTime:        b.EndTime.UTC(),
		Status:         string(b.Status),
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в статус, допустимый для смены вручную
// confirmed выставляется только при создании
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch s := domain.BookingStatus(status); s {
	case domain.StatusCancelled, domain.StatusCompleted:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
