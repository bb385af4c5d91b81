package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the durable identity record behind a verified token. This service
// only reads it (for the profile aggregate); registration and login live in
// the external auth service.
//
// The password column deliberately has no field here: the repository never
// projects it, so a credential secret cannot leak through this model.
type User struct {
	ID        uuid.UUID
	Login     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
