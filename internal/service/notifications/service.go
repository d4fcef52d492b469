package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

// DefaultTimeout ограничение на отправку одного уведомления о бронировании
const DefaultTimeout = 10 * time.Second

// Service рассылает уведомления специалистам и администраторам
// Ошибки доставки логируются и не возвращаются вызывающему
type Service struct {
	sender      Sender
	adminRepo   AdminRepository
	metrics     Metrics
	logger      Logger
	adminChatID int64 // статический чат администратора, 0 - не задан
	timeout     time.Duration

	wg sync.WaitGroup
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(sender Sender, adminRepo AdminRepository, metrics Metrics, adminChatID int64, timeout time.Duration, logger Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Service{
		sender:      sender,
		adminRepo:   adminRepo,
		metrics:     metrics,
		logger:      logger,
		adminChatID: adminChatID,
		timeout:     timeout,
	}
}

// NotifyBookingCreated отправляет уведомления о новом бронировании в фоне
// Контекст запроса не используется: ответ клиенту не ждет доставки
func (s *Service) NotifyBookingCreated(booking *domain.Booking, specialist *domain.User) {
	if !s.sender.Enabled() {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		// Чат специалиста уже получил уведомление и не дублируется админской копией
		var notified []int64
		if specialist != nil && specialist.HasTelegram() {
			s.send(ctx, kindSpecialist, *specialist.TelegramChatID, specialistBookingMessage(booking))
			notified = append(notified, *specialist.TelegramChatID)
		} else {
			s.logger.Info("NotifyBookingCreated: specialist of booking id=%d has no linked chat", booking.ID)
		}

		s.notifyAdmins(ctx, kindAdmin, adminBookingMessage(booking, specialist), notified...)
	}()
}

// NotifyAdmins отправляет сообщение всем администраторам с префиксом [ADMIN]
// Получатели: статический чат и администраторы с привязанным Telegram, без повторов
func (s *Service) NotifyAdmins(ctx context.Context, kind, message string) {
	s.notifyAdmins(ctx, kind, message)
}

func (s *Service) notifyAdmins(ctx context.Context, kind, message string, skip ...int64) {
	if !s.sender.Enabled() {
		return
	}

	for _, chatID := range s.adminRecipients(ctx, skip) {
		s.send(ctx, kind, chatID, adminPrefix+message)
	}
}

// SendDailySummary отправляет администраторам сводку на московский день
func (s *Service) SendDailySummary(ctx context.Context, day msktime.Date, bookings []*domain.Booking) {
	s.NotifyAdmins(ctx, kindSummary, DailySummaryMessage(day, bookings))
}

// SendReminder отправляет администраторам напоминание о предстоящем созвоне
func (s *Service) SendReminder(ctx context.Context, booking *domain.Booking) {
	s.NotifyAdmins(ctx, kindReminder, ReminderMessage(booking))
}

// Wait дожидается завершения фоновых отправок
func (s *Service) Wait() {
	s.wg.Wait()
}

// adminRecipients чаты администраторов без повторов, чаты из skip исключаются
func (s *Service) adminRecipients(ctx context.Context, skip []int64) []int64 {
	seen := make(map[int64]bool, len(skip))
	for _, chatID := range skip {
		seen[chatID] = true
	}
	recipients := make([]int64, 0, 4)

	if s.adminChatID != 0 && !seen[s.adminChatID] {
		seen[s.adminChatID] = true
		recipients = append(recipients, s.adminChatID)
	}

	admins, err := s.adminRepo.ListAdminsWithTelegram(ctx)
	if err != nil {
		s.logger.Error("adminRecipients: failed to list admins: %v", err)
		return recipients
	}

	for _, admin := range admins {
		if !admin.HasTelegram() || seen[*admin.TelegramChatID] {
			continue
		}
		seen[*admin.TelegramChatID] = true
		recipients = append(recipients, *admin.TelegramChatID)
	}

	return recipients
}

func (s *Service) send(ctx context.Context, kind string, chatID int64, message string) {
	err := s.sender.SendMessage(ctx, chatID, message)
	s.metrics.IncNotification(kind, err)
	if err != nil {
		s.logger.Error("send: %s to chat=%d failed: %v", kind, chatID, err)
	}
}
