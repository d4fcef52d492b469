package telegram_link

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/telegramlink"
	"github.com/m04kA/SMC-SchedulingService/internal/service/telegramlink/models"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgUserNotFound = "пользователь не найден"
)

type Handler struct {
	service LinkService
	logger  Logger
}

func NewHandler(service LinkService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleStatus GET /api/v1/my/telegram
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /my/telegram", h.service.Status)
}

// HandleRegenerate POST /api/v1/my/telegram/regenerate
func (h *Handler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /my/telegram/regenerate", h.service.Regenerate)
}

type linkCall func(ctx context.Context, identity domain.Identity) (*models.LinkStatusResponse, error)

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route string, call linkCall) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := call(r.Context(), identity)
	if err != nil {
		if errors.Is(err, telegramlink.ErrUserNotFound) {
			h.logger.Warn("%s - User not found: user_id=%d", route, identity.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}

		h.logger.Error("%s - Failed: user_id=%d, error=%v", route, identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
