package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicProductCreated is the Watermill topic published when a Product is created.
const TopicProductCreated = "product.created"

// ProductCreatedEvent is published after a new Product is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicProductCreated).
type ProductCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	ProductID   uuid.UUID `json:"product_id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	OccurredAt  time.Time `json:"occurred_at"`
}
