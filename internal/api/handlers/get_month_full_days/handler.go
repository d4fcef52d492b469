package get_month_full_days

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getMonthFullDays "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_month_full_days"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
	msgInvalidMonth        = "параметры year и month обязательны, month от 1 до 12"
	msgSpecialistNotFound  = "специалист не найден"
)

type Handler struct {
	useCase GetMonthFullDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthFullDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/specialists/{id}/month-availability?year=YYYY&month=M
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialistID, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/month-availability - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthFullDays.Request{
		SpecialistID: specialistID,
		Year:         year,
		Month:        time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthFullDays.ErrSpecialistNotFound):
			h.logger.Warn("GET /specialists/{id}/month-availability - Specialist not found: specialist_id=%d", specialistID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, getMonthFullDays.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /specialists/{id}/month-availability - Failed: specialist_id=%d, error=%v", specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
