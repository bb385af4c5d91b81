package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is the core aggregate for this bounded context.
type Product struct {
	ID          uuid.UUID
	UserID      uuid.UUID // owner scope, always filter by this in queries
	Name        ProductName
	Description string
	Price       float64
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct constructs a valid Product aggregate with generated ID and
// current timestamps. The owner comes from the verified Identity, never from
// client input. UpdatedAt starts equal to CreatedAt.
func NewProduct(userID uuid.UUID, name ProductName, description string, price float64, category string) (*Product, error) {
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
