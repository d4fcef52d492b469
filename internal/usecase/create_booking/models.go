package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	SpecialistID  int64     `validate:"required,gt=0"`
	ClientName    string    `validate:"required,max=255"`
	ClientContact string    `validate:"required,max=255"`
	StartTime     time.Time `validate:"required"` // Абсолютный момент начала слота
	Notes         *string   `validate:"omitempty,max=1000"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	SpecialistID   int64
	SpecialistName string
	ClientName     string
	ClientContact  string
	StartTime      time.Time
	EndTime        time.Time
	Status         string
	Notes          *string
	CreatedAt      time.Time
}
