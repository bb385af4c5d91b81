package httpx_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/produtos-api/pkg/httpx"
)

func TestJSON_WritesStatusAndHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, 201, map[string]string{"nome": "Widget"})

	if w.Code != 201 {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("unexpected X-Content-Type-Options: %q", got)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["nome"] != "Widget" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestJSONMessage_Shape(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONMessage(w, 200, "Produto deletado com sucesso")

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 || body["message"] != "Produto deletado com sucesso" {
		t.Fatalf("unexpected body: %v", body)
	}
}
