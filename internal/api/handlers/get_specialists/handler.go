package get_specialists

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/specialists"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
	msgSpecialistNotFound  = "специалист не найден"
)

type Handler struct {
	service SpecialistService
	logger  Logger
}

func NewHandler(service SpecialistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/specialists
// Публичный endpoint - без авторизации
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /specialists - Failed to list specialists: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/specialists/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	specialistID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /specialists/{id} - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	result, err := h.service.GetByID(r.Context(), specialistID)
	if err != nil {
		if errors.Is(err, specialists.ErrSpecialistNotFound) {
			handlers.RespondNotFound(w, msgSpecialistNotFound)
			return
		}

		h.logger.Error("GET /specialists/{id} - Failed to get specialist: specialist_id=%d, error=%v", specialistID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
