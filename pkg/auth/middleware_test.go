package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/produtos-api/pkg/config"
	"github.com/ghuser/produtos-api/pkg/logger"
)

// newTestLogger creates a logger that only emits at error level.
func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// requestWithToken builds an *http.Request carrying a token cookie signed
// by codec for the given identity.
func requestWithToken(t *testing.T, codec *Codec, ident Identity) *http.Request {
	t.Helper()

	raw, err := codec.Sign(ident, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: raw})
	return req
}

func decodeUnauthorized(t *testing.T, w *httptest.ResponseRecorder) unauthorizedResponse {
	t.Helper()

	var resp unauthorizedResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode 401 body: %v", err)
	}
	return resp
}

func TestRequireIdentity_ValidToken(t *testing.T) {
	codec := NewCodec(testSecret)
	log := newTestLogger()
	ident := Identity{ID: uuid.New(), Login: "alice"}

	var captured Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = IdentityFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := requestWithToken(t, codec, ident)
	w := httptest.NewRecorder()
	RequireIdentity(codec, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured != ident {
		t.Fatalf("expected identity %v in context, got %v", ident, captured)
	}
}

func TestRequireIdentity_MissingCookie(t *testing.T) {
	codec := NewCodec(testSecret)
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	RequireIdentity(codec, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	resp := decodeUnauthorized(t, w)
	if resp.Error != CodeMissingCredential {
		t.Errorf("expected error code %q, got %q", CodeMissingCredential, resp.Error)
	}
	if resp.Message != "Token de acesso necessário." {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestRequireIdentity_EmptyCookie(t *testing.T) {
	codec := NewCodec(testSecret)
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: ""})
	w := httptest.NewRecorder()
	RequireIdentity(codec, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if resp := decodeUnauthorized(t, w); resp.Error != CodeMissingCredential {
		t.Errorf("expected error code %q, got %q", CodeMissingCredential, resp.Error)
	}
}

func TestRequireIdentity_InvalidToken(t *testing.T) {
	codec := NewCodec(testSecret)
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-jwt"})
	w := httptest.NewRecorder()
	RequireIdentity(codec, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	resp := decodeUnauthorized(t, w)
	if resp.Error != CodeInvalidCredential {
		t.Errorf("expected error code %q, got %q", CodeInvalidCredential, resp.Error)
	}
	if resp.Message != "Token inválido." {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestRequireIdentity_ExpiredToken(t *testing.T) {
	codec := NewCodec(testSecret)
	log := newTestLogger()
	ident := Identity{ID: uuid.New(), Login: "alice"}

	raw, err := codec.Sign(ident, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: raw})
	w := httptest.NewRecorder()
	RequireIdentity(codec, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if resp := decodeUnauthorized(t, w); resp.Error != CodeInvalidCredential {
		t.Errorf("expected error code %q, got %q", CodeInvalidCredential, resp.Error)
	}
}

func TestRequireIdentity_TokenSignedWithOtherSecret(t *testing.T) {
	codec := NewCodec(testSecret)
	other := NewCodec([]byte("another-secret-also-32-bytes-ok!"))
	log := newTestLogger()
	ident := Identity{ID: uuid.New(), Login: "alice"}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := requestWithToken(t, other, ident)
	w := httptest.NewRecorder()
	RequireIdentity(codec, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if resp := decodeUnauthorized(t, w); resp.Error != CodeInvalidCredential {
		t.Errorf("expected error code %q, got %q", CodeInvalidCredential, resp.Error)
	}
}
