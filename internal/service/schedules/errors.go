package schedules

import "errors"

var (
	// ErrSpecialistNotFound возвращается, когда специалист не найден
	ErrSpecialistNotFound = errors.New("schedules: specialist not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("schedules: access denied")

	// ErrInvalidInput возвращается при некорректных строках расписания
	ErrInvalidInput = errors.New("schedules: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedules: internal error")
)
