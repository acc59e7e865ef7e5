package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oijdod/hrms-backend-go/internal/domain/user"
	"github.com/oijdod/hrms-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

const userColumns = `
	u.id, u.login_id, u.password_hash, u.role, u.is_first_login,
	u.employee_id, u.created_at, u.updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.LoginID, &u.PasswordHash, &u.Role, &u.IsFirstLogin,
		&u.EmployeeID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (login_id, password_hash, role, is_first_login, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.LoginID, u.PasswordHash, u.Role, u.IsFirstLogin, u.EmployeeID,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if IsUniqueViolation(err, "users_login_id_key") {
			return user.User{}, user.ErrLoginIDExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + ` FROM users u WHERE u.id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// GetByLoginID implements user.UserRepository.
func (r *userRepository) GetByLoginID(ctx context.Context, loginID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + userColumns + ` FROM users u WHERE u.login_id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, loginID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by login ID: %w", err)
	}

	return u, nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, is_first_login = FALSE, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}
