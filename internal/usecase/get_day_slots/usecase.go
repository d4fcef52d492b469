package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

// UseCase use case для получения свободных слотов специалиста на день
type UseCase struct {
	scheduleRepo   ScheduleRepository
	bookingRepo    BookingRepository
	specialistRepo SpecialistRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	specialistRepo SpecialistRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:   scheduleRepo,
		bookingRepo:    bookingRepo,
		specialistRepo: specialistRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: specialist=%d, date=%s", req.SpecialistID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем текущее время один раз на весь расчет
	now := uc.timeProvider.Now()

	// 3. Проверяем существование специалиста
	if _, err := uc.specialistRepo.GetSpecialistByID(ctx, req.SpecialistID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetDaySlots: specialist id=%d not found", req.SpecialistID)
			return nil, ErrSpecialistNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get specialist id=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	response := &Response{
		SpecialistID: req.SpecialistID,
		Date:         req.Date,
	}

	// 4. Прошедшая дата: свободных слотов нет, хранилище не запрашиваем
	if msktime.IsPast(req.Date, now) {
		uc.logger.Info("GetDaySlots: date=%s is in the past", req.Date)
		response.Slots = []time.Time{}
		return response, nil
	}

	// 5. Получаем окно расписания на день недели
	window, err := uc.scheduleRepo.GetActiveByWeekday(ctx, req.SpecialistID, req.Date.Weekday())
	if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Info("GetDaySlots: specialist=%d does not work on %s", req.SpecialistID, req.Date.Weekday())
		response.Slots = availability.DaySlots(req.Date, nil, nil, now)
		return response, nil
	}
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 6. Получаем бронирования за московские сутки
	from, to := msktime.DayRange(req.Date)
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		SpecialistID: &req.SpecialistID,
		From:         &from,
		To:           &to,
		ActiveOnly:   true,
	})
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Вычисляем свободные слоты
	response.Slots = availability.DaySlots(req.Date, window, bookings, now)

	uc.logger.Info("GetDaySlots: specialist=%d, date=%s, bookings=%d, free slots=%d",
		req.SpecialistID, req.Date, len(bookings), len(response.Slots))

	return response, nil
}
