// Package handlers contains one HTTP handler per product route. The wire
// contract keeps the legacy Portuguese field names so existing clients keep
// working unchanged.
package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/produtos-api/pkg/auth"
	"github.com/ghuser/produtos-api/pkg/httpx"
	"github.com/ghuser/produtos-api/services/product/domain/models"
)

// msgMissingNamePrice is the 400 body for create/update input failures.
const msgMissingNamePrice = "Nome e preço são obrigatórios"

// ProductRequest is the request body for POST /products and PUT /products/{id}.
// `required` on Preco rejects 0, preserving the legacy validation behavior.
// PUT replaces all four fields: omitted descricao/categoria clear the stored
// values rather than preserving them.
type ProductRequest struct {
	Nome      string  `json:"nome" validate:"required" example:"Widget"`
	Descricao string  `json:"descricao" example:"Um widget de qualidade"`
	Preco     float64 `json:"preco" validate:"required" example:"9.99"`
	Categoria string  `json:"categoria" example:"ferramentas"`
} // @name ProductRequest

// ProductResponse is the wire shape of a single product.
type ProductResponse struct {
	ID        uuid.UUID `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Nome      string    `json:"nome"      example:"Widget"`
	Descricao *string   `json:"descricao" example:"Um widget de qualidade"`
	Preco     float64   `json:"preco"     example:"9.99"`
	Categoria *string   `json:"categoria" example:"ferramentas"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
} // @name ProductResponse

// UsuarioResponse is the caller identity echoed in list responses.
type UsuarioResponse struct {
	ID    uuid.UUID `json:"id"`
	Login string    `json:"login"`
} // @name UsuarioResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Message string `json:"message" example:"Produto não encontrado"`
} // @name ErrorResponse

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Nome:      p.Name.String(),
		Descricao: optional(p.Description),
		Preco:     p.Price,
		Categoria: optional(p.Category),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProductResponses(products []*models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

// optional maps the empty string to JSON null, per the legacy contract for
// unset descricao/categoria.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// identity extracts the verified Identity injected by auth.RequireIdentity.
// Absence means the route was mounted without the middleware; the request is
// rejected the same way the middleware rejects a missing credential.
func identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	ident, err := auth.IdentityFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, map[string]string{
			"error":   auth.CodeMissingCredential,
			"message": "Token de acesso necessário.",
		})
		return auth.Identity{}, false
	}
	return ident, true
}

// pathID parses the {id} route parameter. An unparseable id cannot name an
// owned record, so it is answered exactly like an unknown one.
func pathID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		httpx.JSONMessage(w, http.StatusNotFound, "Produto não encontrado")
		return uuid.Nil, false
	}
	return id, true
}
