package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/produtos-api/services/user/domain/models"
)

// UserRepository is the read-side persistence interface for identity records.
type UserRepository interface {
	// GetByID fetches a user by id. Returns ErrUserNotFound when the record
	// does not exist (e.g. deleted after token issuance).
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
