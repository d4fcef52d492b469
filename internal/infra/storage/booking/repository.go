package booking

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

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var selectColumns = []string{
	"b.id",
	"b.specialist_id",
	"b.client_name",
	"b.client_contact",
	"b.start_time",
	"b.end_time",
	"b.status",
	"b.notes",
	"COALESCE(u.name, '')",
	"b.created_at",
	"b.updated_at",
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("bookings b").
		LeftJoin("users u ON u.id = b.specialist_id")
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникального индекса активных слотов возвращается как ErrSlotAlreadyBooked.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"specialist_id",
			"client_name",
			"client_contact",
			"start_time",
			"end_time",
			"status",
			"notes",
		).
		Values(
			booking.SpecialistID,
			booking.ClientName,
			booking.ClientContact,
			booking.StartTime.UTC(),
			booking.EndTime.UTC(),
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if pgerr.IsUniqueViolation(err) {
		return nil, ErrSlotAlreadyBooked
	}
	if pgerr.IsForeignKeyViolation(err) {
		return nil, ErrSpecialistMissing
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// ExistsActiveAt проверяет, занят ли слот специалиста неотмененным бронированием
func (r *Repository) ExistsActiveAt(ctx context.Context, specialistID int64, startTime time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"specialist_id": specialistID}).
		Where(squirrel.Eq{"start_time": startTime.UTC()}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveAt - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectBookings()

	if filter.SpecialistID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.specialist_id": *filter.SpecialistID})
	}

	// Полуоткрытый интервал [From, To)
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.start_time": filter.From.UTC()})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"b.start_time": filter.To.UTC()})
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": statuses})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": domain.StatusCancelled})
	}

	if filter.Descending {
		selectBuilder = selectBuilder.OrderBy("b.start_time DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("b.start_time ASC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus переводит бронирование из confirmed в новый статус
// Если строка не обновилась, различает отсутствие бронирования и уже смененный статус
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(domain.StatusConfirmed)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsUniqueViolation(err) {
		return ErrSlotAlreadyBooked
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return r.missedUpdateReason(ctx, id)
	}

	return nil
}

// missedUpdateReason объясняет, почему условное обновление статуса не затронуло строк
func (r *Repository) missedUpdateReason(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status").
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build status query: %v", ErrBuildQuery, err)
	}

	var current string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - read current status: %v", ErrScanRow, err)
	}

	return fmt.Errorf("%w: current status %s", ErrBookingNotConfirmed, current)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.SpecialistID,
		&booking.ClientName,
		&booking.ClientContact,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.Notes,
		&booking.SpecialistName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.StartTime = booking.StartTime.UTC()
	booking.EndTime = booking.EndTime.UTC()
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
