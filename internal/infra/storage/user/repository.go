package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/pgerr"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий пользователей (специалисты и администраторы)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectUsers() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"email",
		"name",
		"role",
		"bio",
		"photo_url",
		"telegram_chat_id",
		"tg_link_code",
		"created_at",
	).From("users")
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetSpecialistByID получает специалиста по ID
func (r *Repository) GetSpecialistByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetSpecialistByID", squirrel.Eq{"id": id, "role": domain.RoleSpecialist})
}

// GetByLinkCode получает пользователя по коду привязки Telegram
func (r *Repository) GetByLinkCode(ctx context.Context, code string) (*domain.User, error) {
	return r.getOne(ctx, "GetByLinkCode", squirrel.Eq{"tg_link_code": code})
}

// ListSpecialists получает всех специалистов
func (r *Repository) ListSpecialists(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx, "ListSpecialists", squirrel.Eq{"role": domain.RoleSpecialist})
}

// ListAdminsWithTelegram получает администраторов с привязанным Telegram
func (r *Repository) ListAdminsWithTelegram(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx, "ListAdminsWithTelegram", squirrel.And{
		squirrel.Eq{"role": domain.RoleAdmin},
		squirrel.NotEq{"telegram_chat_id": nil},
	})
}

// SetTelegramChatID привязывает чат Telegram к пользователю
func (r *Repository) SetTelegramChatID(ctx context.Context, userID, chatID int64) error {
	query, args, err := psqlbuilder.Update("users").
		Set("telegram_chat_id", chatID).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetTelegramChatID - build update query: %v", ErrBuildQuery, err)
	}

	return r.execUpdate(ctx, "SetTelegramChatID", query, args)
}

// SetLinkCode сохраняет новый код привязки
// unlink=true дополнительно отвязывает текущий чат
func (r *Repository) SetLinkCode(ctx context.Context, userID int64, code string, unlink bool) error {
	updateBuilder := psqlbuilder.Update("users").
		Set("tg_link_code", code).
		Where(squirrel.Eq{"id": userID})
	if unlink {
		updateBuilder = updateBuilder.Set("telegram_chat_id", nil)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetLinkCode - build update query: %v", ErrBuildQuery, err)
	}

	return r.execUpdate(ctx, "SetLinkCode", query, args)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectUsers().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	return user, nil
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectUsers().Where(where).OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return users, nil
}

func (r *Repository) execUpdate(ctx context.Context, op, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsUniqueViolation(err) {
		return ErrLinkCodeTaken
	}
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var createdAt sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.Bio,
		&user.PhotoURL,
		&user.TelegramChatID,
		&user.TgLinkCode,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	user.CreatedAt = createdAt.Time
	return &user, nil
}
