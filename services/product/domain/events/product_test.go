package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/produtos-api/services/product/domain/events"
)

func TestProductCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.ProductCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ProductID:   uuid.New(),
		UserID:      uuid.New(),
		Name:        "Caneca Azul",
		Description: "ceramica",
		Price:       29.9,
		Category:    "cozinha",
		OccurredAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{
		"event_id", "version", "product_id", "user_id",
		"name", "description", "price", "category", "occurred_at",
	} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopicProductCreated_Value(t *testing.T) {
	if events.TopicProductCreated != "product.created" {
		t.Errorf("expected %q, got %q", "product.created", events.TopicProductCreated)
	}
}
