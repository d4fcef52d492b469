package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerr"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий недельных расписаний специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectSchedules() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"specialist_id",
		"day_of_week",
		"to_char(start_time, 'HH24:MI')",
		"to_char(end_time, 'HH24:MI')",
		"is_active",
	).From("schedules")
}

// GetActiveByWeekday получает активное окно специалиста на день недели
func (r *Repository) GetActiveByWeekday(ctx context.Context, specialistID int64, weekday time.Weekday) (*domain.WeeklyScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSchedules().
		Where(squirrel.Eq{"specialist_id": specialistID}).
		Where(squirrel.Eq{"day_of_week": int(weekday)}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByWeekday - scan schedule: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetBySpecialist получает расписание специалиста, упорядоченное по дню недели
// activeOnly=true возвращает только активные окна
func (r *Repository) GetBySpecialist(ctx context.Context, specialistID int64, activeOnly bool) ([]domain.WeeklyScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectSchedules().
		Where(squirrel.Eq{"specialist_id": specialistID})
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.OrderBy("day_of_week ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpecialist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpecialist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.WeeklyScheduleSlot, 0, 7)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBySpecialist - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, *slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBySpecialist - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// DeleteBySpecialist удаляет все окна специалиста
// Вызывается только внутри транзакции замены расписания
func (r *Repository) DeleteBySpecialist(ctx context.Context, specialistID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedules").
		Where(squirrel.Eq{"specialist_id": specialistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBySpecialist - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteBySpecialist - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// InsertBatch вставляет окна одним запросом
func (r *Repository) InsertBatch(ctx context.Context, slots []domain.WeeklyScheduleSlot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("schedules").
		Columns("specialist_id", "day_of_week", "start_time", "end_time", "is_active")
	for _, slot := range slots {
		insertBuilder = insertBuilder.Values(
			slot.SpecialistID,
			int(slot.Weekday),
			slot.StartLocal.String(),
			slot.EndLocal.String(),
			slot.IsActive,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: InsertBatch - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if pgerr.IsCheckViolation(err) || pgerr.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrInvalidSchedule, pgerr.ConstraintName(err))
	}
	if err != nil {
		return fmt.Errorf("%w: InsertBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.WeeklyScheduleSlot, error) {
	var slot domain.WeeklyScheduleSlot
	var weekday int

	err := row.Scan(
		&slot.SpecialistID,
		&weekday,
		&slot.StartLocal,
		&slot.EndLocal,
		&slot.IsActive,
	)
	if err != nil {
		return nil, err
	}

	slot.Weekday = time.Weekday(weekday)
	return &slot, nil
}
