package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/msktime"
)

// Request модель запроса свободных слотов на день
type Request struct {
	SpecialistID int64        // ID специалиста
	Date         msktime.Date // Дата по московскому времени
}

// Response модель ответа со слотами
type Response struct {
	SpecialistID int64
	Date         msktime.Date
	Slots        []time.Time // Абсолютные моменты начала слотов (UTC), по возрастанию
}
