package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBookingNotConfirmed возвращается, когда статус уже сменили и бронирование не в confirmed
	ErrBookingNotConfirmed = errors.New("booking.repository: booking is not confirmed")

	// ErrSlotAlreadyBooked возвращается, когда уникальный индекс активных слотов отклонил вставку
	ErrSlotAlreadyBooked = errors.New("booking.repository: slot already booked")

	// ErrSpecialistMissing возвращается, когда специалист удален до вставки бронирования
	ErrSpecialistMissing = errors.New("booking.repository: specialist does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
