package update_schedule

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
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

func (m *mockService) Replace(ctx context.Context, identity domain.Identity, specialistID int64, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	args := m.Called(ctx, identity, specialistID, req)
	resp, _ := args.Get(0).(*models.ScheduleResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"days":[{"dayOfWeek":1,"startTime":"09:00","endTime":"18:00","isActive":true}]}`

func serve(svc *mockService, identity *domain.Identity, method, url, payload string) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/my/schedule", h.HandleMine).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/admin/specialists/{id}/schedule", h.HandleForSpecialist).Methods(http.MethodPut)

	req := httptest.NewRequest(method, url, strings.NewReader(payload))
	if identity != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), *identity))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleMine_UsesCallerID(t *testing.T) {
	identity := domain.Identity{UserID: 5, Role: domain.RoleSpecialist}
	svc := &mockService{}
	svc.On("Replace", mock.Anything, identity, int64(5), mock.MatchedBy(func(req *models.ReplaceScheduleRequest) bool {
		return len(req.Days) == 1 && req.Days[0].StartTime == "09:00"
	})).Return(&models.ScheduleResponse{SpecialistID: 5}, nil)

	rec := serve(svc, &identity, http.MethodPut, "/api/v1/my/schedule", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleForSpecialist_UsesPathID(t *testing.T) {
	identity := domain.Identity{UserID: 1, Role: domain.RoleAdmin}
	svc := &mockService{}
	svc.On("Replace", mock.Anything, identity, int64(9), mock.Anything).
		Return(&models.ScheduleResponse{SpecialistID: 9}, nil)

	rec := serve(svc, &identity, http.MethodPut, "/api/v1/admin/specialists/9/schedule", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	identity := domain.Identity{UserID: 5, Role: domain.RoleSpecialist}

	tests := []struct {
		name     string
		identity *domain.Identity
		payload  string
		err      error
		status   int
	}{
		{"no identity", nil, body, nil, http.StatusUnauthorized},
		{"bad body", &identity, `{"days":"x"}`, nil, http.StatusBadRequest},
		{"invalid rows", &identity, body, schedules.ErrInvalidInput, http.StatusBadRequest},
		{"forbidden", &identity, body, schedules.ErrAccessDenied, http.StatusForbidden},
		{"not found", &identity, body, schedules.ErrSpecialistNotFound, http.StatusNotFound},
		{"internal", &identity, body, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Replace", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, tt.identity, http.MethodPut, "/api/v1/my/schedule", tt.payload)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
