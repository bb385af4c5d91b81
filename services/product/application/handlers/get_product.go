package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/produtos-api/pkg/errhttp"
	"github.com/ghuser/produtos-api/pkg/httpx"
	"github.com/ghuser/produtos-api/pkg/logger"
	appsvcs "github.com/ghuser/produtos-api/services/product/application/services"
	productdomain "github.com/ghuser/produtos-api/services/product/domain"
)

// GetProductHandler handles GET /products/{id} requests.
type GetProductHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetProductHandler returns a GetProductHandler backed by the given services.
func NewGetProductHandler(svc *appsvcs.Services, log logger.Logger) *GetProductHandler {
	return &GetProductHandler{svc: svc, log: log}
}

// Execute fetches one of the authenticated caller's products. A product owned
// by another user is answered 404, indistinguishable from one that does not exist.
//
//	@Summary		Get product
//	@Description	Fetches a single product owned by the authenticated user
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	ProductResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	product, err := h.svc.Product.GetByID(r.Context(), ident, id)
	if err != nil {
		if errors.Is(err, productdomain.ErrProductNotFound) {
			h.log.WarnContext(r.Context(), "product not found or not owned", "user", ident.Login, "id", id)
		} else {
			h.log.ErrorContext(r.Context(), "get product failed", "user", ident.Login, "id", id, "error", err)
		}
		errhttp.WriteError(w, err)
		return
	}

	h.log.InfoContext(r.Context(), "product fetched", "product", product.Name.String(), "user", ident.Login)
	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}
