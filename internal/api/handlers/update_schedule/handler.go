package update_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedules"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedules/models"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется авторизация"
	msgForbidden           = "доступ запрещен"
	msgSpecialistNotFound  = "специалист не найден"
	msgInvalidData         = "некорректное расписание: время HH:00, начало раньше конца, день недели не повторяется"
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

// HandleMine PUT /api/v1/my/schedule
func (h *Handler) HandleMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.replace(w, r, identity.UserID)
}

// HandleForSpecialist PUT /api/v1/admin/specialists/{id}/schedule
func (h *Handler) HandleForSpecialist(w http.ResponseWriter, r *http.Request) {
	specialistID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /specialists/{id}/schedule - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	h.replace(w, r, specialistID)
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request, specialistID int64) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.ReplaceScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Replace(r.Context(), identity, specialistID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("PUT schedule - Access denied: user_id=%d, specialist_id=%d", identity.UserID, specialistID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedules.ErrSpecialistNotFound):
			h.logger.Warn("PUT schedule - Specialist not found: specialist_id=%d", specialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("PUT schedule - Invalid data: specialist_id=%d, error=%v", specialistID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT schedule - Failed to replace schedule: specialist_id=%d, error=%v", specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT schedule - Schedule replaced: specialist_id=%d, by user_id=%d", specialistID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
