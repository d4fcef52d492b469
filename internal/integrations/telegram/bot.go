package telegram

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// placeholderToken значение из шаблона .env, считается отсутствием токена
const placeholderToken = "YOUR_BOT_TOKEN_HERE"

// Bot клиент Telegram: отправка уведомлений и привязка аккаунтов командой /start
// Без токена бот выключен и все отправки игнорируются
type Bot struct {
	api    *bot.Bot
	linker Linker
	logger Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New создает бота; пустой токен дает выключенного бота
func New(token string, linker Linker, logger Logger) (*Bot, error) {
	b := &Bot{linker: linker, logger: logger}
	if token == "" || token == placeholderToken {
		logger.Warn("Telegram token not provided, notifications disabled")
		return b, nil
	}

	api, err := bot.New(token, bot.WithDefaultHandler(func(ctx context.Context, _ *bot.Bot, _ *models.Update) {}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateBot, err)
	}
	api.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, b.handleStart)

	b.api = api
	return b, nil
}

// Enabled бот подключен к Telegram
func (b *Bot) Enabled() bool {
	return b.api != nil
}

// Start запускает получение обновлений в фоне
func (b *Bot) Start(ctx context.Context) {
	if !b.Enabled() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.done = make(chan struct{})

	go func() {
		defer close(b.done)
		b.logger.Info("Telegram bot started")
		b.api.Start(runCtx)
		b.logger.Info("Telegram bot stopped")
	}()
}

// Stop останавливает получение обновлений и ждет завершения
func (b *Bot) Stop() {
	b.mu.Lock()
	cancel, done := b.cancel, b.done
	b.cancel = nil
	b.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// SendMessage отправляет HTML-сообщение в чат
func (b *Bot) SendMessage(ctx context.Context, chatID int64, html string) error {
	if !b.Enabled() {
		return nil
	}

	_, err := b.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      html,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("%w: chat=%d: %v", ErrSendMessage, chatID, err)
	}

	return nil
}

// handleStart обрабатывает команду /start <код>
func (b *Bot) handleStart(ctx context.Context, api *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	reply := startReply(ctx, b.linker, b.logger, update.Message.Text, chatID)

	if _, err := api.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: reply}); err != nil {
		b.logger.Error("handleStart: reply to chat=%d failed: %v", chatID, err)
	}
}
