package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getDaySlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
	msgMissingDate         = "параметр date обязателен"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSpecialistNotFound  = "специалист не найден"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/specialists/{id}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialistID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/availability - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Дата разбирается как московская, без участия часового пояса процесса
	date, err := msktime.ParseDate(rawDate)
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{SpecialistID: specialistID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrSpecialistNotFound):
			h.logger.Warn("GET /specialists/{id}/availability - Specialist not found: specialist_id=%d", specialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, getDaySlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /specialists/{id}/availability - Failed to get slots: specialist_id=%d, error=%v", specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
