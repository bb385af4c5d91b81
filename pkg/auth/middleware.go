package auth

import (
	"net/http"

	"github.com/ghuser/produtos-api/pkg/httpx"
	"github.com/ghuser/produtos-api/pkg/logger"
)

// CookieName is the credential slot: a single cookie holding the signed token.
const CookieName = "token"

// Stable wire codes for the two 401 cases. Clients can tell a missing
// credential from a rejected one; the status code is 401 either way.
const (
	CodeMissingCredential = "CREDENCIAIS_AUSENTES"
	CodeInvalidCredential = "CREDENCIAIS_INVALIDAS"
)

type unauthorizedResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RequireIdentity is a chi middleware that enforces authentication via the
// token cookie. It reads the cookie, verifies it with the Codec, and injects
// the resulting Identity into the request context. Requests without a cookie
// or with an unverifiable token are rejected with 401 before any handler runs.
//
// After this middleware, handlers can safely call auth.IdentityFromCtx(r.Context()).
func RequireIdentity(codec *Codec, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				log.WarnContext(r.Context(), "access attempt without token", "path", r.URL.Path)
				httpx.JSON(w, http.StatusUnauthorized, unauthorizedResponse{
					Error:   CodeMissingCredential,
					Message: "Token de acesso necessário.",
				})
				return
			}

			ident, err := codec.Verify(cookie.Value)
			if err != nil {
				log.WarnContext(r.Context(), "invalid token provided", "path", r.URL.Path, "error", err)
				httpx.JSON(w, http.StatusUnauthorized, unauthorizedResponse{
					Error:   CodeInvalidCredential,
					Message: "Token inválido.",
				})
				return
			}

			ctx := WithIdentity(r.Context(), ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
