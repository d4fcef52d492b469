package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
	"github.com/m04kA/SMC-SchedulingService/pkg/validation"
)

const (
	conflictStagePrecheck   = "precheck"
	conflictStageConstraint = "constraint"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	scheduleRepo   ScheduleRepository
	specialistRepo SpecialistRepository
	txManager      TransactionManager
	notifier       Notifier
	metrics        Metrics
	validate       *validator.Validate
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	specialistRepo SpecialistRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		scheduleRepo:   scheduleRepo,
		specialistRepo: specialistRepo,
		txManager:      txManager,
		notifier:       notifier,
		metrics:        metrics,
		validate:       validation.New(),
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Проверка занятости и вставка выполняются в одной транзакции,
// гонку между ними закрывает уникальный индекс (specialist_id, start_time) по неотмененным записям
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: specialist=%d, start=%s", req.SpecialistID, req.StartTime.UTC().Format("2006-01-02T15:04:05Z"))

	// 1. Валидация входных данных
	normalizeRequest(req)
	if err := validateRequest(uc.validate, req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	start := req.StartTime.UTC()

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что время выровнено по часу и в будущем
	if err := validateStartTime(start, now); err != nil {
		uc.logger.Warn("CreateBooking: start time validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем специалиста
	specialist, err := uc.specialistRepo.GetSpecialistByID(ctx, req.SpecialistID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: specialist id=%d not found", req.SpecialistID)
			return nil, ErrSpecialistNotFound
		}
		uc.logger.Error("CreateBooking: failed to get specialist id=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	// 5. Проверяем, что время попадает в слот расписания на московскую дату
	date := msktime.DateOf(start)
	window, err := uc.scheduleRepo.GetActiveByWeekday(ctx, req.SpecialistID, date.Weekday())
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if err := validateAgainstSchedule(start, window); err != nil {
		uc.logger.Warn("CreateBooking: specialist=%d, date=%s: %v", req.SpecialistID, date, err)
		return nil, err
	}

	var result *domain.Booking

	// 6. Проверка занятости и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 6.1. Предварительная проверка занятости слота
		exists, err := uc.bookingRepo.ExistsActiveAt(txCtx, req.SpecialistID, start)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if exists {
			uc.metrics.IncBookingConflict(conflictStagePrecheck)
			uc.logger.Warn("CreateBooking: slot %s already booked for specialist=%d", date, req.SpecialistID)
			return ErrSlotConflict
		}

		// 6.2. Создаем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			SpecialistID:   req.SpecialistID,
			ClientName:     req.ClientName,
			ClientContact:  req.ClientContact,
			StartTime:      start,
			EndTime:        start.Add(domain.SlotDuration),
			Status:         domain.StatusConfirmed,
			Notes:          req.Notes,
			SpecialistName: specialist.Name,
		})
		if errors.Is(err, bookingRepo.ErrSlotAlreadyBooked) {
			// Параллельный запрос успел занять слот между проверкой и вставкой
			uc.metrics.IncBookingConflict(conflictStageConstraint)
			uc.logger.Warn("CreateBooking: unique index rejected slot for specialist=%d", req.SpecialistID)
			return ErrSlotConflict
		}
		if errors.Is(err, bookingRepo.ErrSpecialistMissing) {
			uc.logger.Warn("CreateBooking: specialist id=%d removed before insert", req.SpecialistID)
			return ErrSpecialistNotFound
		}
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotConflict) || errors.Is(err, ErrSpecialistNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 7. Уведомления отправляются после фиксации и не влияют на результат
	uc.notifier.NotifyBookingCreated(result, specialist)

	return &Response{
		ID:             result.ID,
		SpecialistID:   result.SpecialistID,
		SpecialistName: specialist.Name,
		ClientName:     result.ClientName,
		ClientContact:  result.ClientContact,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Status:         string(result.Status),
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
	}, nil
}
