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

// DeleteProductHandler handles DELETE /products/{id} requests.
type DeleteProductHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteProductHandler returns a DeleteProductHandler backed by the given services.
func NewDeleteProductHandler(svc *appsvcs.Services, log logger.Logger) *DeleteProductHandler {
	return &DeleteProductHandler{svc: svc, log: log}
}

// Execute permanently deletes one of the caller's products (hard delete, no
// tombstone). A product owned by another user is answered 404.
//
//	@Summary		Delete product
//	@Description	Permanently deletes a product owned by the authenticated user
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	ErrorResponse	"Confirmation message"
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products/{id} [delete]
func (h *DeleteProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.svc.Product.Delete(r.Context(), ident, id); err != nil {
		if errors.Is(err, productdomain.ErrProductNotFound) {
			h.log.WarnContext(r.Context(), "product not found for delete", "user", ident.Login, "id", id)
		} else {
			h.log.ErrorContext(r.Context(), "delete product failed", "user", ident.Login, "id", id, "error", err)
		}
		errhttp.WriteError(w, err)
		return
	}

	h.log.InfoContext(r.Context(), "product deleted", "user", ident.Login, "id", id)
	httpx.JSONMessage(w, http.StatusOK, "Produto deletado com sucesso")
}
