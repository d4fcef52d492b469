package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда на день недели нет активного окна
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrInvalidSchedule возвращается, когда строка нарушает ограничения таблицы
	ErrInvalidSchedule = errors.New("schedule.repository: schedule violates table constraints")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
