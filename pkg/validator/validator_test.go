package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/produtos-api/pkg/validator"
)

type sampleRequest struct {
	Nome      string  `json:"nome" validate:"required,max=255"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco" validate:"required"`
	Categoria string  `json:"categoria"`
}

const sampleBadRequestMsg = "Nome e preço são obrigatórios"

func TestValidate_valid(t *testing.T) {
	s := sampleRequest{Nome: "Widget", Preco: 19.9}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleRequest{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestValidate_zeroPriceFailsRequired(t *testing.T) {
	s := sampleRequest{Nome: "Widget", Preco: 0}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for zero price")
	}
}

func decodeValidRequest(t *testing.T, body string) (*sampleRequest, *httptest.ResponseRecorder, bool) {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req, ok := pkgvalidator.DecodeValid[sampleRequest](w, r, sampleBadRequestMsg)
	return req, w, ok
}

func TestDecodeValid_ValidBody(t *testing.T) {
	req, w, ok := decodeValidRequest(t, `{"nome":"Widget","preco":19.9,"descricao":"blue"}`)
	if !ok {
		t.Fatalf("expected ok, got 400 with body %s", w.Body.String())
	}
	if req.Nome != "Widget" || req.Preco != 19.9 || req.Descricao != "blue" {
		t.Fatalf("unexpected decoded request: %+v", req)
	}
}

func TestDecodeValid_MalformedJSON(t *testing.T) {
	req, w, ok := decodeValidRequest(t, `{"nome":`)
	if ok || req != nil {
		t.Fatal("expected failure for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != sampleBadRequestMsg {
		t.Errorf("unexpected message: %q", body["message"])
	}
}

func TestDecodeValid_MissingName(t *testing.T) {
	_, w, ok := decodeValidRequest(t, `{"preco":19.9}`)
	if ok {
		t.Fatal("expected failure for missing nome")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDecodeValid_ZeroPrice(t *testing.T) {
	_, w, ok := decodeValidRequest(t, `{"nome":"Widget","preco":0}`)
	if ok {
		t.Fatal("expected failure for zero price")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDecodeValid_MissingPrice(t *testing.T) {
	_, w, ok := decodeValidRequest(t, `{"nome":"Widget"}`)
	if ok {
		t.Fatal("expected failure for missing preco")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
