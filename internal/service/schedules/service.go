package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedules/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/validation"
)

// Service сервис для работы с недельными расписаниями специалистов
type Service struct {
	scheduleRepo   ScheduleRepository
	specialistRepo SpecialistRepository
	txManager      TransactionManager
	validate       *validator.Validate
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	specialistRepo SpecialistRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:   scheduleRepo,
		specialistRepo: specialistRepo,
		txManager:      txManager,
		validate:       validation.New(),
		logger:         logger,
	}
}

// Get возвращает расписание специалиста на все 7 дней недели
// Доступно самому специалисту и администраторам
func (s *Service) Get(ctx context.Context, identity domain.Identity, specialistID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for specialist=%d by user=%d", specialistID, identity.UserID)

	if err := s.checkAccess(ctx, identity, specialistID); err != nil {
		return nil, err
	}

	slots, err := s.scheduleRepo.GetBySpecialist(ctx, specialistID, false)
	if err != nil {
		s.logger.Error("Get: repository error for specialist=%d: %v", specialistID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched %d schedule rows for specialist=%d", len(slots), specialistID)
	return models.FromDomainSlots(specialistID, slots), nil
}

// Replace полностью заменяет недельное расписание специалиста
// Сохраняются только активные дни, удаление и вставка идут в одной транзакции
func (s *Service) Replace(ctx context.Context, identity domain.Identity, specialistID int64, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Replace: replacing schedule for specialist=%d by user=%d, days=%d", specialistID, identity.UserID, len(req.Days))

	// 1. Валидируем входные данные
	if err := validateScheduleRequest(s.validate, req); err != nil {
		s.logger.Warn("Replace: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права доступа и существование специалиста
	if err := s.checkAccess(ctx, identity, specialistID); err != nil {
		return nil, err
	}

	// 3. Заменяем расписание в транзакции
	slots := req.ToDomainSlots(specialistID)
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.DeleteBySpecialist(txCtx, specialistID); err != nil {
			return fmt.Errorf("delete schedule: %w", err)
		}
		if err := s.scheduleRepo.InsertBatch(txCtx, slots); err != nil {
			return fmt.Errorf("insert schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrInvalidSchedule) {
			s.logger.Warn("Replace: storage rejected schedule for specialist=%d: %v", specialistID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Replace: transaction failed for specialist=%d: %v", specialistID, err)
		return nil, fmt.Errorf("%w: Replace - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: successfully saved %d active days for specialist=%d", len(slots), specialistID)
	return models.FromDomainSlots(specialistID, slots), nil
}

// checkAccess проверяет, что вызывающий управляет специалистом и что специалист существует
func (s *Service) checkAccess(ctx context.Context, identity domain.Identity, specialistID int64) error {
	if !identity.CanManage(specialistID) {
		s.logger.Warn("checkAccess: user=%d cannot manage specialist=%d", identity.UserID, specialistID)
		return ErrAccessDenied
	}

	if _, err := s.specialistRepo.GetSpecialistByID(ctx, specialistID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkAccess: specialist id=%d not found", specialistID)
			return ErrSpecialistNotFound
		}
		s.logger.Error("checkAccess: failed to get specialist id=%d: %v", specialistID, err)
		return fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
	}

	return nil
}
