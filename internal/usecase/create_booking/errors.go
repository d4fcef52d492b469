package create_booking

import "errors"

var (
	// ErrSpecialistNotFound возвращается, когда специалист не найден
	ErrSpecialistNotFound = errors.New("create_booking: specialist not found")

	// ErrSlotConflict возвращается, когда слот уже занят неотмененным бронированием
	// Одинаков для предварительной проверки и для срабатывания уникального индекса
	ErrSlotConflict = errors.New("create_booking: slot already booked")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает с началом слота расписания
	ErrInvalidTimeSlot = errors.New("create_booking: time is not a schedule slot")

	// ErrSlotInPast возвращается, когда слот уже начался
	ErrSlotInPast = errors.New("create_booking: slot is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
