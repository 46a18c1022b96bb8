package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"medequip-system/internal/authz"
	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

const (
	userTable  = "users"
	userFields = "id, email, name, password, role, created_at, updated_at"
)

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context) ([]entities.User, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByName(ctx context.Context, name string) (*entities.User, error)
	GetAdminEmails(ctx context.Context) ([]string, error)
	CreateUser(ctx context.Context, user entities.User) (uint64, error)
	UpdateUser(ctx context.Context, id uint64, changes map[string]interface{}) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY name ASC", userFields, userTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE email = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, email))
}

// FindByName is used by the batch importer, which references owners by
// display name.
func (r *UserRepository) FindByName(ctx context.Context, name string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE name = $1 LIMIT 1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, name))
}

func (r *UserRepository) GetAdminEmails(ctx context.Context) ([]string, error) {
	rows, err := r.storage.Query(ctx,
		fmt.Sprintf("SELECT email FROM %s WHERE role = $1", userTable), authz.RoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := make([]string, 0)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (email, name, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, userTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query, user.Email, user.Name, user.Password, user.Role).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

// UpdateUser applies only the supplied columns.
func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update(userTable).
		SetMap(changes).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrEmailTaken
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", userTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
