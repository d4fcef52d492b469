package notifications

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

type sentMessage struct {
	chatID int64
	text   string
}

type fakeSender struct {
	mu      sync.Mutex
	enabled bool
	failFor map[int64]bool
	sent    []sentMessage
}

func (f *fakeSender) Enabled() bool { return f.enabled }

func (f *fakeSender) SendMessage(_ context.Context, chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[chatID] {
		return errors.New("chat not found")
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (f *fakeSender) chats() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0, len(f.sent))
	for _, m := range f.sent {
		ids = append(ids, m.chatID)
	}
	return ids
}

type mockAdminRepo struct{ mock.Mock }

func (m *mockAdminRepo) ListAdminsWithTelegram(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

type countingMetrics struct {
	mu     sync.Mutex
	ok     int
	failed int
}

func (m *countingMetrics) IncNotification(_ string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.failed++
		return
	}
	m.ok++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func chat(id int64) *int64 { return &id }

var start = msktime.FromLocal(2025, time.October, 16, 14, 0)

func booking() *domain.Booking {
	return &domain.Booking{
		ID: 1, SpecialistID: 7, ClientName: "Иван <script>", StartTime: start,
		EndTime: start.Add(time.Hour), Status: domain.StatusConfirmed, SpecialistName: "Анна",
	}
}

func TestNotifyBookingCreated_FansOutWithoutDuplicates(t *testing.T) {
	sender := &fakeSender{enabled: true}
	admins := &mockAdminRepo{}
	metrics := &countingMetrics{}
	admins.On("ListAdminsWithTelegram", mock.Anything).Return([]*domain.User{
		{ID: 1, Role: domain.RoleAdmin, TelegramChatID: chat(100)}, // совпадает со статическим чатом
		{ID: 2, Role: domain.RoleAdmin, TelegramChatID: chat(200)},
	}, nil)

	svc := NewService(sender, admins, metrics, 100, time.Second, nopLogger{})
	svc.NotifyBookingCreated(booking(), &domain.User{ID: 7, Name: "Анна", TelegramChatID: chat(700)})
	svc.Wait()

	assert.ElementsMatch(t, []int64{700, 100, 200}, sender.chats())
	assert.Equal(t, 3, metrics.ok)

	for _, m := range sender.sent {
		switch m.chatID {
		case 700:
			assert.Contains(t, m.text, "Новый созвон!")
			assert.Contains(t, m.text, "16 октября в 14:00")
			assert.Contains(t, m.text, "Иван &lt;script&gt;")
			assert.Contains(t, m.text, "не указана")
			assert.False(t, strings.HasPrefix(m.text, adminPrefix))
		default:
			assert.True(t, strings.HasPrefix(m.text, adminPrefix))
			assert.Contains(t, m.text, "<b>Ментор:</b> Анна")
		}
	}
}

func TestNotifyBookingCreated_SpecialistAdminGetsOneMessage(t *testing.T) {
	sender := &fakeSender{enabled: true}
	admins := &mockAdminRepo{}
	admins.On("ListAdminsWithTelegram", mock.Anything).Return([]*domain.User{
		{ID: 7, Role: domain.RoleAdmin, TelegramChatID: chat(700)},
		{ID: 2, Role: domain.RoleAdmin, TelegramChatID: chat(200)},
	}, nil)

	svc := NewService(sender, admins, &countingMetrics{}, 100, time.Second, nopLogger{})
	svc.NotifyBookingCreated(booking(), &domain.User{ID: 7, Name: "Анна", Role: domain.RoleAdmin, TelegramChatID: chat(700)})
	svc.Wait()

	assert.ElementsMatch(t, []int64{700, 100, 200}, sender.chats())
	for _, m := range sender.sent {
		if m.chatID == 700 {
			assert.False(t, strings.HasPrefix(m.text, adminPrefix))
		}
	}
}

func TestNotifyBookingCreated_SpecialistChatIsStaticAdminChat(t *testing.T) {
	sender := &fakeSender{enabled: true}
	admins := &mockAdminRepo{}
	admins.On("ListAdminsWithTelegram", mock.Anything).Return(nil, nil)

	svc := NewService(sender, admins, &countingMetrics{}, 700, time.Second, nopLogger{})
	svc.NotifyBookingCreated(booking(), &domain.User{ID: 7, Name: "Анна", TelegramChatID: chat(700)})
	svc.Wait()

	assert.Equal(t, []int64{700}, sender.chats())
}

func TestNotifyBookingCreated_SpecialistWithoutChat(t *testing.T) {
	sender := &fakeSender{enabled: true}
	admins := &mockAdminRepo{}
	admins.On("ListAdminsWithTelegram", mock.Anything).Return(nil, nil)

	svc := NewService(sender, admins, &countingMetrics{}, 100, time.Second, nopLogger{})
	svc.NotifyBookingCreated(booking(), &domain.User{ID: 7, Name: "Анна"})
	svc.Wait()

	assert.Equal(t, []int64{100}, sender.chats())
}

func TestNotifyBookingCreated_FailuresAreSwallowed(t *testing.T) {
	sender := &fakeSender{enabled: true, failFor: map[int64]bool{700: true}}
	admins := &mockAdminRepo{}
	metrics := &countingMetrics{}
	admins.On("ListAdminsWithTelegram", mock.Anything).Return(nil, errors.New("db down"))

	svc := NewService(sender, admins, metrics, 100, time.Second, nopLogger{})
	svc.NotifyBookingCreated(booking(), &domain.User{ID: 7, TelegramChatID: chat(700)})
	svc.Wait()

	assert.Equal(t, []int64{100}, sender.chats())
	assert.Equal(t, 1, metrics.failed)
	assert.Equal(t, 1, metrics.ok)
}

func TestNotifyBookingCreated_DisabledSender(t *testing.T) {
	sender := &fakeSender{enabled: false}
	admins := &mockAdminRepo{}

	svc := NewService(sender, admins, &countingMetrics{}, 100, time.Second, nopLogger{})
	svc.NotifyBookingCreated(booking(), &domain.User{ID: 7, TelegramChatID: chat(700)})
	svc.Wait()

	assert.Empty(t, sender.chats())
	admins.AssertNotCalled(t, "ListAdminsWithTelegram", mock.Anything)
}

func TestDailySummaryMessage(t *testing.T) {
	day := msktime.Date{Year: 2025, Month: time.October, Day: 16}

	assert.Equal(t, "На сегодня созвонов нет.", DailySummaryMessage(day, nil))

	msg := DailySummaryMessage(day, []*domain.Booking{
		{ClientName: "Иван", SpecialistName: "Анна", StartTime: day.At(10, 0)},
		{ClientName: "Олег", SpecialistName: "Борис", StartTime: day.At(15, 0)},
	})
	require.True(t, strings.HasPrefix(msg, "📅 <b>Сводка созвонов на сегодня (16 октября):</b>"))
	assert.Contains(t, msg, "• <b>10:00</b> (МСК): Иван (Ментор: Анна)\n")
	assert.Contains(t, msg, "• <b>15:00</b> (МСК): Олег (Ментор: Борис)\n")
}

func TestReminderMessage(t *testing.T) {
	notes := "Карьера"
	b := booking()
	b.Notes = &notes

	msg := ReminderMessage(b)

	assert.Contains(t, msg, "Созвон через час!")
	assert.Contains(t, msg, "<b>Время:</b> 14:00 (МСК)")
	assert.Contains(t, msg, "<b>Ментор:</b> Анна")
	assert.Contains(t, msg, "<b>Тема:</b> Карьера")
}
