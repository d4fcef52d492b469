package get_month_full_days

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

// Request модель запроса заполненных дней месяца
type Request struct {
	SpecialistID int64
	Year         int
	Month        time.Month
}

// Response модель ответа
type Response struct {
	SpecialistID int64
	Year         int
	Month        time.Month
	FullDays     []msktime.Date // По возрастанию
}
