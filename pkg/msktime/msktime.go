// Package msktime переводит абсолютные моменты времени в московское гражданское время и обратно.
//
// Платформа работает в одном часовом поясе (МСК, UTC+3) без перехода на летнее время,
// поэтому смещение задано константой и применяется явно. Часовой пояс процесса
// и база tzdata не используются: все поля читаются через UTC-аксессоры.
package msktime

import (
	"fmt"
	"time"
)

// Offset смещение московского времени относительно UTC
const Offset = 3 * time.Hour

// DateLayout формат календарной даты на проводе
const DateLayout = "2006-01-02"

// LocalDateTime компоненты московского времени
type LocalDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// Date возвращает календарную дату без времени
func (l LocalDateTime) Date() Date {
	return Date{Year: l.Year, Month: l.Month, Day: l.Day}
}

// ToLocal возвращает московские компоненты для абсолютного момента: instant + 3h, прочитанный в UTC
func ToLocal(instant time.Time) LocalDateTime {
	shifted := instant.UTC().Add(Offset)
	return LocalDateTime{
		Year:   shifted.Year(),
		Month:  shifted.Month(),
		Day:    shifted.Day(),
		Hour:   shifted.Hour(),
		Minute: shifted.Minute(),
	}
}

// FromLocal возвращает абсолютный момент (в UTC) для московских компонент
// Компоненты вне диапазона нормализуются так же, как в time.Date
func FromLocal(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC).Add(-Offset)
}

// DateOf возвращает московскую календарную дату момента
func DateOf(instant time.Time) Date {
	return ToLocal(instant).Date()
}

// Date календарная дата в московском времени
// Никогда не проходит через разбор с часовым поясом процесса
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate создаёт дату с нормализацией (например, 32 января -> 1 февраля)
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate разбирает строку YYYY-MM-DD как московскую дату
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// String форматирует дату как YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero сообщает, что дата не задана
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Weekday день недели даты (0 = воскресенье)
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Midnight абсолютный момент московской полуночи этой даты
func (d Date) Midnight() time.Time {
	return FromLocal(d.Year, d.Month, d.Day, 0, 0)
}

// At абсолютный момент для московского времени hour:minute этой даты
func (d Date) At(hour, minute int) time.Time {
	return FromLocal(d.Year, d.Month, d.Day, hour, minute)
}

// Before сравнивает даты
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DayRange границы московских суток [00:00 date, 00:00 date+1) в абсолютном времени
func DayRange(d Date) (from, to time.Time) {
	return d.Midnight(), d.AddDays(1).Midnight()
}

// MonthRange границы московского месяца [00:00 первого дня, 00:00 первого дня следующего месяца)
func MonthRange(year int, month time.Month) (from, to time.Time) {
	first := NewDate(year, month, 1)
	return first.Midnight(), NewDate(year, month+1, 1).Midnight()
}

// DaysInMonth количество дней в месяце
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Today московская дата для момента now
func Today(now time.Time) Date {
	return DateOf(now)
}

// IsToday сообщает, что дата совпадает с московским "сегодня"
func IsToday(d Date, now time.Time) bool {
	return d == Today(now)
}

// IsPast сообщает, что дата раньше московского "сегодня"
func IsPast(d Date, now time.Time) bool {
	return d.Before(Today(now))
}

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatDayMonthTime форматирует момент как "16 октября в 14:00" по МСК
func FormatDayMonthTime(instant time.Time) string {
	l := ToLocal(instant)
	return fmt.Sprintf("%d %s в %02d:%02d", l.Day, monthsGenitive[l.Month-1], l.Hour, l.Minute)
}

// FormatDayMonth форматирует момент как "16 октября" по МСК
func FormatDayMonth(instant time.Time) string {
	l := ToLocal(instant)
	return fmt.Sprintf("%d %s", l.Day, monthsGenitive[l.Month-1])
}

// FormatClock форматирует момент как "14:00" по МСК
func FormatClock(instant time.Time) string {
	l := ToLocal(instant)
	return fmt.Sprintf("%02d:%02d", l.Hour, l.Minute)
}
