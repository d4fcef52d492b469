package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListMine получает бронирования вызывающего специалиста по возрастанию времени начала
func (s *Service) ListMine(ctx context.Context, identity domain.Identity) (*models.BookingListResponse, error) {
	s.logger.Info("ListMine: fetching bookings for specialist=%d", identity.UserID)

	specialistID := identity.UserID
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{SpecialistID: &specialistID})
	if err != nil {
		s.logger.Error("ListMine: repository error for specialist=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMine: successfully fetched %d bookings for specialist=%d", len(bookings), identity.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListAll получает все бронирования платформы по убыванию времени начала
// Доступно только администраторам
func (s *Service) ListAll(ctx context.Context, identity domain.Identity) (*models.BookingListResponse, error) {
	if !identity.IsAdmin() {
		s.logger.Warn("ListAll: user=%d is not an admin", identity.UserID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{Descending: true})
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования на cancelled или completed
// Менять может владелец-специалист или администратор, только из confirmed
func (s *Service) UpdateStatus(ctx context.Context, identity domain.Identity, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d, status=%s, user=%d", bookingID, req.Status, identity.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !identity.CanManage(booking.SpecialistID) {
		s.logger.Warn("UpdateStatus: access denied for user=%d to booking id=%d", identity.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: booking id=%d cannot move from %s to %s", bookingID, booking.Status, newStatus)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrBookingNotConfirmed) {
			s.logger.Warn("UpdateStatus: booking id=%d changed concurrently: %v", bookingID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}
