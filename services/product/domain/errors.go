package domain

import "errors"

// Sentinel errors for the product domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates no product matches the (id, owner) pair.
	// A product owned by someone else yields this same error: callers cannot
	// tell "absent" from "not yours".
	ErrProductNotFound = errors.New("product not found")

	// ErrProductAlreadyExists indicates a product with the same unique constraint already exists.
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrInvalidProduct indicates the product violates domain constraints.
	ErrInvalidProduct = errors.New("invalid product")
)
