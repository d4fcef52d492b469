package domain

import "time"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Booking бронирование часового слота у специалиста
// StartTime и EndTime абсолютные моменты (хранятся в UTC)
type Booking struct {
	ID            int64
	SpecialistID  int64
	ClientName    string
	ClientContact string
	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus
	Notes         *string

	// Денормализованные данные для списков и уведомлений
	SpecialistName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive бронирование занимает слот (все статусы, кроме отмены)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanTransitionTo проверяет допустимость смены статуса
// Из confirmed можно перейти в cancelled или completed, финальные статусы не меняются
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status != StatusConfirmed {
		return false
	}
	return next == StatusCancelled || next == StatusCompleted
}

// NotesOrDefault возвращает тему созвона или заглушку
func (b *Booking) NotesOrDefault(fallback string) string {
	if b.Notes == nil || *b.Notes == "" {
		return fallback
	}
	return *b.Notes
}

// BookingsFilter фильтр выборки бронирований
type BookingsFilter struct {
	SpecialistID *int64          // nil - все специалисты
	From         *time.Time      // start_time >= From
	To           *time.Time      // start_time < To
	Statuses     []BookingStatus // пусто - любые статусы
	ActiveOnly   bool            // исключить отмененные
	Descending   bool            // сортировка по start_time DESC
}
