package get_schedule

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedules"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedules/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Get(ctx context.Context, identity domain.Identity, specialistID int64) (*models.ScheduleResponse, error) {
	args := m.Called(ctx, identity, specialistID)
	resp, _ := args.Get(0).(*models.ScheduleResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *mockService, identity domain.Identity, url string) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/my/schedule", h.HandleMine)
	r.HandleFunc("/api/v1/admin/specialists/{id}/schedule", h.HandleForSpecialist)

	req := httptest.NewRequest(http.MethodGet, url, nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), identity))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleMine(t *testing.T) {
	identity := domain.Identity{UserID: 5, Role: domain.RoleSpecialist}
	svc := &mockService{}
	svc.On("Get", mock.Anything, identity, int64(5)).
		Return(models.FromDomainSlots(5, nil), nil)

	rec := serve(svc, identity, "/api/v1/my/schedule")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dayOfWeek":6`)
	svc.AssertExpectations(t)
}

func TestHandleForSpecialist_Errors(t *testing.T) {
	admin := domain.Identity{UserID: 1, Role: domain.RoleAdmin}

	tests := []struct {
		name   string
		url    string
		err    error
		status int
	}{
		{"bad id", "/api/v1/admin/specialists/-1/schedule", nil, http.StatusBadRequest},
		{"forbidden", "/api/v1/admin/specialists/2/schedule", schedules.ErrAccessDenied, http.StatusForbidden},
		{"not found", "/api/v1/admin/specialists/2/schedule", schedules.ErrSpecialistNotFound, http.StatusNotFound},
		{"internal", "/api/v1/admin/specialists/2/schedule", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.status, serve(svc, admin, tt.url).Code)
		})
	}
}
