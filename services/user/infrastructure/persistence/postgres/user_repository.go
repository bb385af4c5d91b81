package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/produtos-api/pkg/database"
	userdomain "github.com/ghuser/produtos-api/services/user/domain"
	"github.com/ghuser/produtos-api/services/user/domain/models"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID fetches a user by id. The password column is never part of the
// projection. Returns ErrUserNotFound when no row exists.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `
		SELECT id, login, created_at, updated_at
		FROM users
		WHERE id = $1`

	var u models.User
	err := r.db.DB().QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Login, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}
