package specialists

import (
	"context"
	"errors"
	"fmt"

	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/internal/service/specialists/models"
)

// Service публичный каталог специалистов
type Service struct {
	specialistRepo SpecialistRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса специалистов
func NewService(specialistRepo SpecialistRepository, logger Logger) *Service {
	return &Service{
		specialistRepo: specialistRepo,
		logger:         logger,
	}
}

// List возвращает всех специалистов
func (s *Service) List(ctx context.Context) (*models.SpecialistListResponse, error) {
	specialists, err := s.specialistRepo.ListSpecialists(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d specialists", len(specialists))
	return models.FromDomainUserList(specialists), nil
}

// GetByID возвращает карточку специалиста
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpecialistResponse, error) {
	specialist, err := s.specialistRepo.GetSpecialistByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: specialist id=%d not found", id)
			return nil, ErrSpecialistNotFound
		}
		s.logger.Error("GetByID: repository error for specialist id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(specialist), nil
}
