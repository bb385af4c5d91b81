// Package errhttp maps domain sentinel errors to HTTP status codes and the
// stable client-facing messages of the wire contract. Add a case to classify
// for each new domain sentinel error.
//
// Client messages are fixed strings; internal error detail never reaches the
// response body. Callers are responsible for logging the full error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/produtos-api/pkg/httpx"
	productdomain "github.com/ghuser/produtos-api/services/product/domain"
	userdomain "github.com/ghuser/produtos-api/services/user/domain"
)

// WriteError maps err to an HTTP status and writes the corresponding JSON
// error body. Uses errors.Is() so wrapped sentinel errors are matched
// correctly. Unrecognized errors become a 500 with a generic message.
func WriteError(w http.ResponseWriter, err error) {
	status, message := classify(err)
	httpx.JSONMessage(w, status, message)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, productdomain.ErrProductNotFound):
		return http.StatusNotFound, "Produto não encontrado"
	case errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound, "Usuário não encontrado"
	case errors.Is(err, productdomain.ErrInvalidProduct):
		return http.StatusBadRequest, "Produto inválido"
	case errors.Is(err, productdomain.ErrProductAlreadyExists):
		return http.StatusConflict, "Produto já existe"
	default:
		return http.StatusInternalServerError, "Erro no servidor"
	}
}
