package telegram

import "errors"

var (
	// ErrCreateBot возвращается, когда клиент Telegram не удалось создать
	ErrCreateBot = errors.New("telegram: failed to create bot")

	// ErrSendMessage возвращается при ошибке отправки сообщения
	ErrSendMessage = errors.New("telegram: failed to send message")
)
