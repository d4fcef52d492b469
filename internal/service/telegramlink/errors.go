package telegramlink

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("telegramlink: user not found")

	// ErrInvalidCode возвращается, когда код привязки не найден
	ErrInvalidCode = errors.New("telegramlink: invalid link code")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("telegramlink: internal error")
)
