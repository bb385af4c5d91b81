package handlers

import (
	"net/http"

	"github.com/ghuser/produtos-api/pkg/errhttp"
	"github.com/ghuser/produtos-api/pkg/httpx"
	"github.com/ghuser/produtos-api/pkg/logger"
	appsvcs "github.com/ghuser/produtos-api/services/product/application/services"
)

// ListProductsResponse is returned by GET /products.
type ListProductsResponse struct {
	Usuario  UsuarioResponse   `json:"usuario"`
	Produtos []ProductResponse `json:"produtos"`
} // @name ListProductsResponse

// GetProductsHandler handles GET /products requests.
type GetProductsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services, log logger.Logger) *GetProductsHandler {
	return &GetProductsHandler{svc: svc, log: log}
}

// Execute lists the authenticated caller's products, newest first.
//
//	@Summary		List products
//	@Description	Lists all products owned by the authenticated user, newest first
//	@Tags			products
//	@Produce		json
//	@Success		200	{object}	ListProductsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products [get]
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}

	products, err := h.svc.Product.List(r.Context(), ident)
	if err != nil {
		h.log.ErrorContext(r.Context(), "list products failed", "user", ident.Login, "error", err)
		errhttp.WriteError(w, err)
		return
	}

	h.log.InfoContext(r.Context(), "products listed", "user", ident.Login, "total", len(products))
	httpx.JSON(w, http.StatusOK, ListProductsResponse{
		Usuario:  UsuarioResponse{ID: ident.ID, Login: ident.Login},
		Produtos: toProductResponses(products),
	})
}
