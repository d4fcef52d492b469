package get_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedules"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
	msgUnauthorized        = "требуется авторизация"
	msgForbidden           = "доступ запрещен"
	msgSpecialistNotFound  = "специалист не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleMine GET /api/v1/my/schedule
func (h *Handler) HandleMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.respond(w, r, identity.UserID)
}

// HandleForSpecialist GET /api/v1/admin/specialists/{id}/schedule
func (h *Handler) HandleForSpecialist(w http.ResponseWriter, r *http.Request) {
	specialistID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/schedule - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	h.respond(w, r, specialistID)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, specialistID int64) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Get(r.Context(), identity, specialistID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("GET schedule - Access denied: user_id=%d, specialist_id=%d", identity.UserID, specialistID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedules.ErrSpecialistNotFound):
			h.logger.Warn("GET schedule - Specialist not found: specialist_id=%d", specialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		default:
			h.logger.Error("GET schedule - Failed to get schedule: specialist_id=%d, error=%v", specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
