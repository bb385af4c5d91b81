package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/produtos-api/pkg/errhttp"
	"github.com/ghuser/produtos-api/pkg/httpx"
	"github.com/ghuser/produtos-api/pkg/logger"
	pkgvalidator "github.com/ghuser/produtos-api/pkg/validator"
	appsvcs "github.com/ghuser/produtos-api/services/product/application/services"
	productdomain "github.com/ghuser/produtos-api/services/product/domain"
)

// PutProductHandler handles PUT /products/{id} requests.
type PutProductHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPutProductHandler returns a PutProductHandler backed by the given services.
func NewPutProductHandler(svc *appsvcs.Services, log logger.Logger) *PutProductHandler {
	return &PutProductHandler{svc: svc, log: log}
}

// Execute replaces the mutable fields of one of the caller's products.
// All four fields are replaced: omitting descricao or categoria clears them.
//
//	@Summary		Update product
//	@Description	Replaces name, description, price, and category of an owned product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Product ID"
//	@Param			request	body		ProductRequest	true	"Replacement field values"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (h *PutProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	req, ok := pkgvalidator.DecodeValid[ProductRequest](w, r, msgMissingNamePrice)
	if !ok {
		h.log.WarnContext(r.Context(), "update product with missing name or price", "user", ident.Login, "id", id)
		return
	}

	product, err := h.svc.Product.Update(r.Context(), ident, id, appsvcs.ProductFields{
		Name:        req.Nome,
		Description: req.Descricao,
		Price:       req.Preco,
		Category:    req.Categoria,
	})
	if err != nil {
		if errors.Is(err, productdomain.ErrProductNotFound) {
			h.log.WarnContext(r.Context(), "product not found for update", "user", ident.Login, "id", id)
		} else {
			h.log.ErrorContext(r.Context(), "update product failed", "user", ident.Login, "id", id, "error", err)
		}
		errhttp.WriteError(w, err)
		return
	}

	h.log.InfoContext(r.Context(), "product updated", "product", product.Name.String(), "user", ident.Login)
	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}
