// Package availability вычисляет свободные слоты специалиста по недельному расписанию и бронированиям.
//
// Все функции чистые: текущее время передается явно, ввода-вывода нет.
// Даты и окна расписания трактуются в московском времени через msktime.
package availability

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

const slotMinutes = int(domain.SlotDuration / time.Minute)

// windowMinutes возвращает границы окна в минутах от начала суток
// Начало округляется вверх до целого часа: слоты всегда стоят на часовой сетке
// Некорректное окно (ошибка формата, нулевое или перевернутое) дает ok=false
func windowMinutes(window domain.WeeklyScheduleSlot) (start, end int, ok bool) {
	start, err := window.StartLocal.Minutes()
	if err != nil {
		return 0, 0, false
	}
	end, err = window.EndLocal.Minutes()
	if err != nil {
		return 0, 0, false
	}
	if start >= end {
		return 0, 0, false
	}
	start = (start + slotMinutes - 1) / slotMinutes * slotMinutes
	return start, end, true
}

// slotOffsets смещения начала слотов от полуночи в минутах
// Слот выдается, только если следующая часовая граница не выходит за конец окна
func slotOffsets(window domain.WeeklyScheduleSlot) []int {
	start, end, ok := windowMinutes(window)
	if !ok {
		return nil
	}

	offsets := make([]int, 0, max(end-start, 0)/slotMinutes)
	for cursor := start; cursor+slotMinutes <= end; cursor += slotMinutes {
		offsets = append(offsets, cursor)
	}
	return offsets
}

// Capacity количество слотов, которое окно дает за день
func Capacity(window domain.WeeklyScheduleSlot) int {
	return len(slotOffsets(window))
}

// SlotStarts абсолютные моменты начала всех слотов окна на дату, по возрастанию
func SlotStarts(date msktime.Date, window domain.WeeklyScheduleSlot) []time.Time {
	offsets := slotOffsets(window)
	starts := make([]time.Time, 0, len(offsets))
	for _, offset := range offsets {
		starts = append(starts, date.At(offset/60, offset%60))
	}
	return starts
}

// IsSlotStart сообщает, что момент совпадает с началом одного из слотов окна на дату
func IsSlotStart(date msktime.Date, window domain.WeeklyScheduleSlot, instant time.Time) bool {
	for _, start := range SlotStarts(date, window) {
		if start.Equal(instant) {
			return true
		}
	}
	return false
}

// DaySlots свободные будущие слоты на дату
//
// window - активное окно на день недели даты (nil, если специалист в этот день не работает).
// bookings - неотмененные бронирования специалиста за московские сутки даты.
// Слот скрывается, если его момент точно совпадает с началом бронирования или не позже now.
func DaySlots(date msktime.Date, window *domain.WeeklyScheduleSlot, bookings []*domain.Booking, now time.Time) []time.Time {
	if window == nil || !window.IsActive {
		return []time.Time{}
	}

	booked := make(map[int64]struct{}, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		booked[b.StartTime.UnixNano()] = struct{}{}
	}

	slots := make([]time.Time, 0)
	for _, start := range SlotStarts(date, *window) {
		if _, taken := booked[start.UnixNano()]; taken {
			continue
		}
		if !start.After(now) {
			continue
		}
		slots = append(slots, start)
	}

	return slots
}

// FullDays даты месяца без свободной емкости
//
// День заполнен, если на его день недели нет активного окна или число неотмененных
// бронирований с этой московской датой не меньше емкости окна.
// Учитывается только количество, а не конкретные занятые часы.
func FullDays(year int, month time.Month, schedule domain.WeeklySchedule, bookings []*domain.Booking) []msktime.Date {
	bookedByDate := make(map[msktime.Date]int)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		bookedByDate[msktime.DateOf(b.StartTime)]++
	}

	days := msktime.DaysInMonth(year, month)
	full := make([]msktime.Date, 0)

	for day := 1; day <= days; day++ {
		date := msktime.NewDate(year, month, day)

		window, ok := schedule.ForWeekday(date.Weekday())
		if !ok {
			full = append(full, date)
			continue
		}

		if bookedByDate[date] >= Capacity(window) {
			full = append(full, date)
		}
	}

	return full
}
