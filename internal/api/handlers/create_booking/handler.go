package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается ISO-8601"
	msgInvalidInput       = "имя и контакт клиента обязательны"
	msgInvalidTimeSlot    = "выбранное время не входит в расписание специалиста"
	msgSlotInPast         = "нельзя записаться на прошедшее время"
	msgSpecialistNotFound = "специалист не найден"
	msgSlotConflict       = "это время уже занято"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: specialist_id=%d, start=%s", req.SpecialistID, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrSpecialistNotFound):
			h.logger.Warn("POST /bookings - Specialist not found: specialist_id=%d", req.SpecialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: specialist_id=%d, start=%s", req.SpecialistID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: specialist_id=%d, start=%s", req.SpecialistID, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: specialist_id=%d, error=%v", req.SpecialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, specialist_id=%d",
		result.ID, result.SpecialistID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
