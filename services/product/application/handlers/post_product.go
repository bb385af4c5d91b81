package handlers

import (
	"net/http"

	"github.com/ghuser/produtos-api/pkg/errhttp"
	"github.com/ghuser/produtos-api/pkg/httpx"
	"github.com/ghuser/produtos-api/pkg/logger"
	pkgvalidator "github.com/ghuser/produtos-api/pkg/validator"
	appsvcs "github.com/ghuser/produtos-api/services/product/application/services"
)

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services, log logger.Logger) *PostProductHandler {
	return &PostProductHandler{svc: svc, log: log}
}

// Execute creates a new product owned by the authenticated caller.
//
//	@Summary		Create product
//	@Description	Creates a new product owned by the authenticated user
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ProductRequest	true	"Product creation request"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.DecodeValid[ProductRequest](w, r, msgMissingNamePrice)
	if !ok {
		h.log.WarnContext(r.Context(), "create product with missing name or price", "user", ident.Login)
		return
	}

	product, err := h.svc.Product.Create(r.Context(), ident, appsvcs.ProductFields{
		Name:        req.Nome,
		Description: req.Descricao,
		Price:       req.Preco,
		Category:    req.Categoria,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "create product failed", "user", ident.Login, "error", err)
		errhttp.WriteError(w, err)
		return
	}

	h.log.InfoContext(r.Context(), "product created", "product", product.Name.String(), "user", ident.Login)
	httpx.JSON(w, http.StatusCreated, toProductResponse(product))
}
