package notifications

import (
	"fmt"
	"html"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

const (
	adminPrefix    = "<b>[ADMIN]</b> "
	unknownMentor  = "Unknown"
	noCallsToday   = "На сегодня созвонов нет."
	kindSpecialist = "booking_specialist"
	kindAdmin      = "booking_admin"
	kindSummary    = "daily_summary"
	kindReminder   = "reminder"
)

// Пользовательский текст экранируется, сообщения уходят с parse_mode=HTML

func specialistBookingMessage(b *domain.Booking) string {
	return fmt.Sprintf(
		"🔔 <b>Новый созвон!</b>\n\n📅 <b>Дата:</b> %s (МСК)\n👤 <b>Клиент:</b> %s\n📝 <b>Тема:</b> %s",
		msktime.FormatDayMonthTime(b.StartTime),
		html.EscapeString(b.ClientName),
		html.EscapeString(b.NotesOrDefault(domain.DefaultNotes)),
	)
}

func adminBookingMessage(b *domain.Booking, specialist *domain.User) string {
	mentor := unknownMentor
	if specialist != nil && specialist.Name != "" {
		mentor = specialist.Name
	}

	return fmt.Sprintf(
		"📌 <b>Новая запись</b>\n\n<b>Ментор:</b> %s\n<b>Дата:</b> %s (МСК)\n<b>Клиент:</b> %s\n<b>Тема:</b> %s",
		html.EscapeString(mentor),
		msktime.FormatDayMonthTime(b.StartTime),
		html.EscapeString(b.ClientName),
		html.EscapeString(b.NotesOrDefault(domain.DefaultNotes)),
	)
}

// DailySummaryMessage сводка подтвержденных созвонов на московский день
func DailySummaryMessage(day msktime.Date, bookings []*domain.Booking) string {
	if len(bookings) == 0 {
		return noCallsToday
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 <b>Сводка созвонов на сегодня (%s):</b>\n\n", msktime.FormatDayMonth(day.Midnight()))
	for _, b := range bookings {
		fmt.Fprintf(&sb, "• <b>%s</b> (МСК): %s (Ментор: %s)\n",
			msktime.FormatClock(b.StartTime),
			html.EscapeString(b.ClientName),
			html.EscapeString(b.SpecialistName),
		)
	}
	return sb.String()
}

// ReminderMessage напоминание о созвоне через час
func ReminderMessage(b *domain.Booking) string {
	return fmt.Sprintf(
		"⏰ <b>Напоминание:</b> Созвон через час!\n<b>Время:</b> %s (МСК)\n<b>Клиент:</b> %s\n<b>Ментор:</b> %s\n<b>Тема:</b> %s",
		msktime.FormatClock(b.StartTime),
		html.EscapeString(b.ClientName),
		html.EscapeString(b.SpecialistName),
		html.EscapeString(b.NotesOrDefault(domain.DefaultNotes)),
	)
}
