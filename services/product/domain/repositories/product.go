package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/produtos-api/services/product/domain/models"
)

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Every method that touches existing rows takes the owner's user id and
// conjoins it into the filter. There is no unscoped access path: a caller
// without the right userID cannot observe that a row exists at all.
type ProductRepository interface {
	Save(ctx context.Context, product *models.Product) error

	// GetByID retrieves a product by id scoped to the given owner.
	// Returns ErrProductNotFound when no row matches both id and owner.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Product, error)

	// FindByUserID retrieves all products owned by userID, newest first.
	// An owner with no products gets an empty slice, not an error.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Product, error)

	// Update atomically replaces the mutable fields (name, description,
	// price, category) of the row matching (product.ID, product.UserID) and
	// refreshes updated_at. Returns the stored row, or ErrProductNotFound.
	Update(ctx context.Context, product *models.Product) (*models.Product, error)

	// Delete removes a product by id scoped to the given owner.
	// Returns ErrProductNotFound when no row matched.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
