package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/produtos-api/pkg/errhttp"
	"github.com/ghuser/produtos-api/pkg/httpx"
	"github.com/ghuser/produtos-api/pkg/logger"
	appsvcs "github.com/ghuser/produtos-api/services/product/application/services"
	userdomain "github.com/ghuser/produtos-api/services/user/domain"
)

// ProfileUsuarioResponse is the durable identity record in the profile
// aggregate. No credential field is ever present.
type ProfileUsuarioResponse struct {
	ID        uuid.UUID `json:"id"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
} // @name ProfileUsuarioResponse

// ProfileResponse is returned by GET /profile.
type ProfileResponse struct {
	Usuario       ProfileUsuarioResponse `json:"usuario"`
	Produtos      []ProductResponse      `json:"produtos"`
	TotalProdutos int                    `json:"totalProdutos"`
} // @name ProfileResponse

// GetProfileHandler handles GET /profile requests.
type GetProfileHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetProfileHandler returns a GetProfileHandler backed by the given services.
func NewGetProfileHandler(svc *appsvcs.Services, log logger.Logger) *GetProfileHandler {
	return &GetProfileHandler{svc: svc, log: log}
}

// Execute returns the caller's durable identity record plus their full
// product list and count. 404 when the identity record was deleted after the
// token was issued.
//
//	@Summary		Get profile
//	@Description	Returns the authenticated user's identity, products, and product count
//	@Tags			profile
//	@Produce		json
//	@Success		200	{object}	ProfileResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/profile [get]
func (h *GetProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}

	user, products, err := h.svc.Product.Profile(r.Context(), ident)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.WarnContext(r.Context(), "user record missing for profile", "user_id", ident.ID)
		} else {
			h.log.ErrorContext(r.Context(), "get profile failed", "user", ident.Login, "error", err)
		}
		errhttp.WriteError(w, err)
		return
	}

	h.log.InfoContext(r.Context(), "profile fetched", "user", user.Login, "total", len(products))
	httpx.JSON(w, http.StatusOK, ProfileResponse{
		Usuario: ProfileUsuarioResponse{
			ID:        user.ID,
			Login:     user.Login,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
		Produtos:      toProductResponses(products),
		TotalProdutos: len(products),
	})
}
