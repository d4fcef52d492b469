package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgForbidden    = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleMine GET /api/v1/my/bookings
// Бронирования вызывающего специалиста по возрастанию начала
func (h *Handler) HandleMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListMine(r.Context(), identity)
	if err != nil {
		h.logger.Error("GET /my/bookings - Failed to list bookings: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAll GET /api/v1/admin/bookings
// Все бронирования, новые первыми
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListAll(r.Context(), identity)
	if err != nil {
		if errors.Is(err, bookings.ErrAccessDenied) {
			h.logger.Warn("GET /admin/bookings - Access denied: user_id=%d", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}

		h.logger.Error("GET /admin/bookings - Failed to list bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
