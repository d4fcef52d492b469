package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модели

// DayRequest рабочее окно на один день недели
type DayRequest struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"` // 0 = воскресенье
	StartTime string `json:"startTime" validate:"required,hhmm,whole_hour"`
	EndTime   string `json:"endTime" validate:"required,hhmm,whole_hour"`
	IsActive  bool   `json:"isActive"`
}

// ReplaceScheduleRequest полная замена недельного расписания
type ReplaceScheduleRequest struct {
	Days []DayRequest `json:"days" validate:"max=7,dive"`
}

// ToDomainSlots конвертирует активные строки запроса в domain модели
func (r *ReplaceScheduleRequest) ToDomainSlots(specialistID int64) []domain.WeeklyScheduleSlot {
	slots := make([]domain.WeeklyScheduleSlot, 0, len(r.Days))
	for _, d := range r.Days {
		if !d.IsActive {
			continue
		}
		slots = append(slots, domain.WeeklyScheduleSlot{
			SpecialistID: specialistID,
			Weekday:      time.Weekday(d.DayOfWeek),
			StartLocal:   types.TimeString(d.StartTime),
			EndLocal:     types.TimeString(d.EndTime),
			IsActive:     true,
		})
	}
	return slots
}

// Response модели

// DayResponse рабочее окно дня недели
type DayResponse struct {
	DayOfWeek int     `json:"dayOfWeek"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	IsActive  bool    `json:"isActive"`
}

// ScheduleResponse недельное расписание специалиста, всегда 7 дней с воскресенья
type ScheduleResponse struct {
	SpecialistID int64         `json:"specialistId"`
	Days         []DayResponse `json:"days"`
}

// Методы конвертации

// FromDomainSlots собирает ответ на все дни недели
// Дни без активного окна возвращаются с isActive=false
func FromDomainSlots(specialistID int64, slots []domain.WeeklyScheduleSlot) *ScheduleResponse {
	byDay := make(map[time.Weekday]domain.WeeklyScheduleSlot, len(slots))
	for _, s := range slots {
		byDay[s.Weekday] = s
	}

	resp := &ScheduleResponse{
		SpecialistID: specialistID,
		Days:         make([]DayResponse, 0, 7),
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := DayResponse{DayOfWeek: int(wd)}
		if s, ok := byDay[wd]; ok && s.IsActive {
			start, end := s.StartLocal.String(), s.EndLocal.String()
			day.StartTime = &start
			day.EndTime = &end
			day.IsActive = true
		}
		resp.Days = append(resp.Days, day)
	}

	return resp
}
