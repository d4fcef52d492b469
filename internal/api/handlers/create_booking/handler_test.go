package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"specialistId":3,"clientName":"Анна","clientContact":"@anna","startTime":"2025-10-20T11:00:00+03:00"}`

func post(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.SpecialistID == 3 && r.StartTime.Equal(start) && r.ClientName == "Анна"
	})).Return(&createBooking.Response{
		ID:             10,
		SpecialistID:   3,
		SpecialistName: "Мария",
		ClientName:     "Анна",
		ClientContact:  "@anna",
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
		Status:         "confirmed",
		CreatedAt:      start.Add(-24 * time.Hour),
	}, nil)

	rec := post(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(10), body.ID)
	assert.Equal(t, "2025-10-20T08:00:00Z", body.StartTime)
	assert.Equal(t, "2025-10-20T09:00:00Z", body.EndTime)
	assert.Equal(t, "confirmed", body.Status)
	uc.AssertExpectations(t)
}

func TestHandle_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"unknown field", `{"specialistId":3,"userId":1}`},
		{"bad start time", `{"specialistId":3,"clientName":"a","clientContact":"b","startTime":"20.10.2025 11:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := post(uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"conflict", createBooking.ErrSlotConflict, http.StatusConflict},
		{"not found", createBooking.ErrSpecialistNotFound, http.StatusNotFound},
		{"outside schedule", createBooking.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"past", createBooking.ErrSlotInPast, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(uc, validBody)

			assert.Equal(t, tt.status, rec.Code)
			var body struct {
				Code int `json:"code"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
		})
	}
}
