// Package services contains stateless domain services for the product bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/produtos-api/services/product/domain/models"
)

// ValidateName enforces business rules for ProductName beyond the structural
// constraints enforced by the ProductName constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - Must not be only whitespace characters
func ValidateName(name models.ProductName) error {
	s := name.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("product name must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("product name must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("product name must not contain control characters")
		}
	}

	return nil
}

// ValidateProductForWrite performs cross-field validation on a fully-constructed
// Product aggregate before it is persisted, on create and on update alike.
// It assumes the Product was built with a valid ProductName (structural
// constraints already satisfied) and adds checks that span multiple fields.
func ValidateProductForWrite(product *models.Product) error {
	if product == nil {
		return fmt.Errorf("product cannot be nil")
	}

	if err := ValidateName(product.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if product.UserID == uuid.Nil {
		return fmt.Errorf("user_id must be set")
	}

	if product.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	return nil
}
