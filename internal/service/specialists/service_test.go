package specialists

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
)

type mockSpecialistRepo struct{ mock.Mock }

func (m *mockSpecialistRepo) GetSpecialistByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockSpecialistRepo) ListSpecialists(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestList(t *testing.T) {
	repo := &mockSpecialistRepo{}
	svc := NewService(repo, nopLogger{})
	bio := "Психолог"
	chatID := int64(100)
	repo.On("ListSpecialists", mock.Anything).Return([]*domain.User{
		{ID: 7, Name: "Анна", Email: "anna@example.com", Bio: &bio, TelegramChatID: &chatID},
		{ID: 8, Name: "Борис"},
	}, nil)

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Specialists, 2)
	assert.Equal(t, "Анна", resp.Specialists[0].Name)
	assert.Equal(t, &bio, resp.Specialists[0].Bio)
}

func TestList_RepositoryError(t *testing.T) {
	repo := &mockSpecialistRepo{}
	svc := NewService(repo, nopLogger{})
	repo.On("ListSpecialists", mock.Anything).Return(nil, errors.New("boom"))

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID(t *testing.T) {
	repo := &mockSpecialistRepo{}
	svc := NewService(repo, nopLogger{})
	repo.On("GetSpecialistByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Name: "Анна"}, nil)
	repo.On("GetSpecialistByID", mock.Anything, int64(99)).Return(nil, userRepo.ErrUserNotFound)

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Анна", resp.Name)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSpecialistNotFound)
}
