package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// WeeklyScheduleSlot рабочее окно специалиста в один день недели
// StartLocal и EndLocal задаются в московском времени
type WeeklyScheduleSlot struct {
	SpecialistID int64
	Weekday      time.Weekday // 0 = воскресенье
	StartLocal   types.TimeString
	EndLocal     types.TimeString
	IsActive     bool
}

// WeeklySchedule недельное расписание специалиста, индексированное по дню недели
type WeeklySchedule map[time.Weekday]WeeklyScheduleSlot

// NewWeeklySchedule строит расписание из строк хранилища, оставляя только активные
func NewWeeklySchedule(slots []WeeklyScheduleSlot) WeeklySchedule {
	schedule := make(WeeklySchedule, len(slots))
	for _, slot := range slots {
		if !slot.IsActive {
			continue
		}
		schedule[slot.Weekday] = slot
	}
	return schedule
}

// ForWeekday возвращает активное окно на день недели
func (s WeeklySchedule) ForWeekday(weekday time.Weekday) (WeeklyScheduleSlot, bool) {
	slot, ok := s[weekday]
	return slot, ok && slot.IsActive
}
