package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/produtos-api/services/product/domain/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   models.ProductName
		wantErr bool
	}{
		{"valid name", "Caneca Azul", false},
		{"valid name with special chars", "Caneca-Azul_123!@#", false},
		{"valid consecutive spaces", "Caneca  Azul", false},
		{"valid accented name", "Fogão de Indução", false},
		{"leading whitespace", " Caneca", true},
		{"trailing whitespace", "Caneca ", true},
		{"leading and trailing whitespace", " Caneca ", true},
		{"only whitespace", "   ", true},
		{"tab character (control)", "Caneca\tAzul", true},
		{"newline character (control)", "Caneca\nAzul", true},
		{"null byte (control)", "Caneca\x00", true},
		{"DEL character", "Caneca\x7F", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProductForWrite(t *testing.T) {
	validName := models.ProductName("Caneca Azul")
	validUserID := uuid.New()
	validID := uuid.New()

	makeProduct := func(id, userID uuid.UUID, name models.ProductName) *models.Product {
		return &models.Product{ID: id, UserID: userID, Name: name, Price: 29.9}
	}

	t.Run("nil product returns error", func(t *testing.T) {
		if err := ValidateProductForWrite(nil); err == nil {
			t.Fatal("expected error for nil product")
		}
	})

	t.Run("valid product returns nil", func(t *testing.T) {
		p := makeProduct(validID, validUserID, validName)
		if err := ValidateProductForWrite(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid name returns error", func(t *testing.T) {
		p := makeProduct(validID, validUserID, " Caneca")
		if err := ValidateProductForWrite(p); err == nil {
			t.Fatal("expected error for invalid name")
		}
	})

	t.Run("nil user id returns error", func(t *testing.T) {
		p := makeProduct(validID, uuid.Nil, validName)
		if err := ValidateProductForWrite(p); err == nil {
			t.Fatal("expected error for nil user id")
		}
	})

	t.Run("nil id returns error", func(t *testing.T) {
		p := makeProduct(uuid.Nil, validUserID, validName)
		if err := ValidateProductForWrite(p); err == nil {
			t.Fatal("expected error for nil id")
		}
	})
}
