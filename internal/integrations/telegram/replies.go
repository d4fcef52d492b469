package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/service/telegramlink"
)

const (
	msgStartHint = "Привет! Чтобы привязать свой аккаунт, напишите /start <ваш_код_из_панели>."
	msgBadCode   = "Неверный код. Пожалуйста, проверьте его в личном кабинете."
	msgLinkError = "Произошла ошибка при привязке аккаунта."
	msgLinkedFmt = "Аккаунт привязан! Привет, %s. Теперь вы будете получать уведомления о новых созвонах."
)

// startPayload извлекает код из "/start CODE"
func startPayload(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// startReply выполняет привязку и возвращает ответ пользователю
func startReply(ctx context.Context, linker Linker, logger Logger, text string, chatID int64) string {
	code := startPayload(text)
	if code == "" {
		return msgStartHint
	}

	user, err := linker.LinkChat(ctx, code, chatID)
	if errors.Is(err, telegramlink.ErrInvalidCode) {
		return msgBadCode
	}
	if err != nil {
		logger.Error("startReply: link chat=%d failed: %v", chatID, err)
		return msgLinkError
	}

	return fmt.Sprintf(msgLinkedFmt, user.Name)
}
