package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

// Config параметры фоновых задач
type Config struct {
	SummaryHour      int           // час отправки сводки по МСК
	ReminderInterval time.Duration // период проверки напоминаний
	ReminderLead     time.Duration // за сколько до начала напоминать
}

// DefaultConfig значения по умолчанию
func DefaultConfig() Config {
	return Config{
		SummaryHour:      9,
		ReminderInterval: 15 * time.Minute,
		ReminderLead:     time.Hour,
	}
}

// Scheduler управляет фоновыми задачами: утренней сводкой и напоминаниями перед созвоном
type Scheduler struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	cfg          Config
	timeProvider TimeProvider
	logger       Logger

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// reminderFrom левая граница следующего окна напоминаний, окна идут без пропусков
	reminderFrom time.Time
	// lastSummaryDay московская дата последней отправленной сводки
	lastSummaryDay msktime.Date
}

// NewScheduler создаёт новый планировщик
func NewScheduler(bookingRepo BookingRepository, notifier Notifier, cfg Config, logger Logger) *Scheduler {
	def := DefaultConfig()
	if cfg.SummaryHour < 0 || cfg.SummaryHour > 23 {
		cfg.SummaryHour = def.SummaryHour
	}
	if cfg.ReminderInterval <= 0 {
		cfg.ReminderInterval = def.ReminderInterval
	}
	if cfg.ReminderLead <= 0 {
		cfg.ReminderLead = def.ReminderLead
	}

	return &Scheduler{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		stopChan:     make(chan struct{}),
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Scheduler) WithTimeProvider(tp TimeProvider) *Scheduler {
	s.timeProvider = tp
	return s
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler: summary at %02d:00 MSK, reminders every %s with lead %s",
		s.cfg.SummaryHour, s.cfg.ReminderInterval, s.cfg.ReminderLead)

	s.wg.Add(2)
	go s.runSummaryTask(ctx)
	go s.runReminderTask(ctx)
}

// Stop останавливает фоновые задачи и ждет их завершения
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
	})
	s.wg.Wait()
}

// runSummaryTask отправляет сводку каждый день в заданный час по МСК
func (s *Scheduler) runSummaryTask(ctx context.Context) {
	defer s.wg.Done()

	for {
		now := s.timeProvider.Now()
		timer := time.NewTimer(s.nextSummaryAt(now).Sub(now))

		select {
		case <-timer.C:
			s.SendDailySummary(ctx)
		case <-s.stopChan:
			timer.Stop()
			s.logger.Info("Daily summary task stopped")
			return
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Daily summary task cancelled")
			return
		}
	}
}

// runReminderTask периодически рассылает напоминания
func (s *Scheduler) runReminderTask(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.ReminderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.SendReminders(ctx)
		case <-s.stopChan:
			s.logger.Info("Reminder task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Reminder task cancelled")
			return
		}
	}
}

// nextSummaryAt ближайший момент отправки сводки строго после now
func (s *Scheduler) nextSummaryAt(now time.Time) time.Time {
	today := msktime.Today(now)
	at := today.At(s.cfg.SummaryHour, 0)
	if !at.After(now) {
		at = today.AddDays(1).At(s.cfg.SummaryHour, 0)
	}
	return at
}

// SendDailySummary отправляет сводку подтвержденных созвонов на московское "сегодня"
// Повторный вызов в те же московские сутки ничего не отправляет (например, после перевода часов назад)
func (s *Scheduler) SendDailySummary(ctx context.Context) {
	now := s.timeProvider.Now()
	if msktime.IsToday(s.lastSummaryDay, now) {
		s.logger.Warn("SendDailySummary: summary for %s already sent", s.lastSummaryDay)
		return
	}

	today := msktime.Today(now)
	from, to := msktime.DayRange(today)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		From:     &from,
		To:       &to,
		Statuses: []domain.BookingStatus{domain.StatusConfirmed},
	})
	if err != nil {
		s.logger.Error("SendDailySummary: failed to list bookings for %s: %v", today, err)
		return
	}

	s.notifier.SendDailySummary(ctx, today, bookings)
	s.lastSummaryDay = today
	s.logger.Info("SendDailySummary: sent summary for %s with %d bookings", today, len(bookings))
}

// SendReminders напоминает о подтвержденных созвонах, начинающихся в [from, now+lead)
// Первое окно занимает один интервал, далее каждое окно начинается там, где кончилось предыдущее
func (s *Scheduler) SendReminders(ctx context.Context) {
	now := s.timeProvider.Now()
	to := now.Add(s.cfg.ReminderLead)
	from := s.reminderFrom
	if from.IsZero() || !from.Before(to) {
		from = to.Add(-s.cfg.ReminderInterval)
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		From:     &from,
		To:       &to,
		Statuses: []domain.BookingStatus{domain.StatusConfirmed},
	})
	if err != nil {
		// Окно не сдвигаем, повторим на следующем тике
		s.reminderFrom = from
		s.logger.Error("SendReminders: failed to list bookings: %v", err)
		return
	}
	s.reminderFrom = to

	for _, b := range bookings {
		s.notifier.SendReminder(ctx, b)
	}

	if len(bookings) > 0 {
		s.logger.Info("SendReminders: sent %d reminders", len(bookings))
	}
}
