package telegramlink

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/internal/service/telegramlink/models"
)

// codeLength длина кода привязки
const codeLength = 8

// maxCodeAttempts сколько раз пробуем сгенерировать свободный код
const maxCodeAttempts = 3

// NewLinkCode генерирует код из 8 шестнадцатеричных символов в верхнем регистре
func NewLinkCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:codeLength])
}

// NormalizeCode приводит введенный пользователем код к формату хранения
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Service управляет привязкой чатов Telegram к аккаунтам
type Service struct {
	userRepo UserRepository
	newCode  CodeGenerator
	logger   Logger
}

// NewService создает новый экземпляр сервиса привязки
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		newCode:  NewLinkCode,
		logger:   logger,
	}
}

// WithCodeGenerator подменяет генератор кодов
func (s *Service) WithCodeGenerator(gen CodeGenerator) *Service {
	s.newCode = gen
	return s
}

// Status возвращает состояние привязки, при отсутствии кода создает его
func (s *Service) Status(ctx context.Context, identity domain.Identity) (*models.LinkStatusResponse, error) {
	user, err := s.getUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	code := ""
	if user.TgLinkCode != nil {
		code = *user.TgLinkCode
	}
	if code == "" {
		code, err = s.issueCode(ctx, user.ID, false)
		if err != nil {
			return nil, err
		}
	}

	return &models.LinkStatusResponse{Linked: user.HasTelegram(), LinkCode: code}, nil
}

// Regenerate выпускает новый код и отвязывает текущий чат
func (s *Service) Regenerate(ctx context.Context, identity domain.Identity) (*models.LinkStatusResponse, error) {
	if _, err := s.getUser(ctx, identity.UserID); err != nil {
		return nil, err
	}

	code, err := s.issueCode(ctx, identity.UserID, true)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Regenerate: user=%d got a new link code, chat unlinked", identity.UserID)
	return &models.LinkStatusResponse{Linked: false, LinkCode: code}, nil
}

// LinkChat привязывает чат к пользователю по коду из команды /start
func (s *Service) LinkChat(ctx context.Context, code string, chatID int64) (*domain.User, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrInvalidCode
	}

	user, err := s.userRepo.GetByLinkCode(ctx, code)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("LinkChat: unknown code from chat=%d", chatID)
			return nil, ErrInvalidCode
		}
		s.logger.Error("LinkChat: repository error: %v", err)
		return nil, fmt.Errorf("%w: LinkChat - repository error: %v", ErrInternal, err)
	}

	if err := s.userRepo.SetTelegramChatID(ctx, user.ID, chatID); err != nil {
		s.logger.Error("LinkChat: failed to save chat for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: LinkChat - save chat: %v", ErrInternal, err)
	}

	user.TelegramChatID = &chatID
	s.logger.Info("LinkChat: user=%d linked chat=%d", user.ID, chatID)
	return user, nil
}

func (s *Service) getUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("getUser: repository error for user=%d: %v", id, err)
		return nil, fmt.Errorf("%w: get user: %v", ErrInternal, err)
	}
	return user, nil
}

// issueCode сохраняет новый код, повторяя попытку при коллизии
func (s *Service) issueCode(ctx context.Context, userID int64, unlink bool) (string, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := s.newCode()
		err := s.userRepo.SetLinkCode(ctx, userID, code, unlink)
		if err == nil {
			return code, nil
		}
		if errors.Is(err, userRepo.ErrLinkCodeTaken) {
			s.logger.Warn("issueCode: code collision for user=%d, attempt %d", userID, attempt)
			continue
		}
		s.logger.Error("issueCode: failed to save code for user=%d: %v", userID, err)
		return "", fmt.Errorf("%w: save link code: %v", ErrInternal, err)
	}

	return "", fmt.Errorf("%w: could not allocate unique link code", ErrInternal)
}
