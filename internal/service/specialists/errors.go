package specialists

import "errors"

var (
	// ErrSpecialistNotFound возвращается, когда специалист не найден
	ErrSpecialistNotFound = errors.New("specialists: specialist not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("specialists: internal error")
)
