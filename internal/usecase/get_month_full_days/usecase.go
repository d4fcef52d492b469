package get_month_full_days

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

// UseCase use case для получения заполненных дней месяца
type UseCase struct {
	scheduleRepo   ScheduleRepository
	bookingRepo    BookingRepository
	specialistRepo SpecialistRepository
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
		logger:         logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthFullDays: specialist=%d, year=%d, month=%d", req.SpecialistID, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthFullDays: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование специалиста
	if _, err := uc.specialistRepo.GetSpecialistByID(ctx, req.SpecialistID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetMonthFullDays: specialist id=%d not found", req.SpecialistID)
			return nil, ErrSpecialistNotFound
		}
		uc.logger.Error("GetMonthFullDays: failed to get specialist id=%d: %v", req.SpecialistID, err)
		return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	// 3. Получаем активное недельное расписание
	slots, err := uc.scheduleRepo.GetBySpecialist(ctx, req.SpecialistID, true)
	if err != nil {
		uc.logger.Error("GetMonthFullDays: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Получаем бронирования за московский месяц
	from, to := msktime.MonthRange(req.Year, req.Month)
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		SpecialistID: &req.SpecialistID,
		From:         &from,
		To:           &to,
		ActiveOnly:   true,
	})
	if err != nil {
		uc.logger.Error("GetMonthFullDays: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Считаем заполненность по дням
	fullDays := availability.FullDays(req.Year, req.Month, domain.NewWeeklySchedule(slots), bookings)

	uc.logger.Info("GetMonthFullDays: specialist=%d, %04d-%02d, bookings=%d, full days=%d",
		req.SpecialistID, req.Year, int(req.Month), len(bookings), len(fullDays))

	return &Response{
		SpecialistID: req.SpecialistID,
		Year:         req.Year,
		Month:        req.Month,
		FullDays:     fullDays,
	}, nil
}
