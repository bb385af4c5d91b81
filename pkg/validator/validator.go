package validator

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/produtos-api/pkg/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// DecodeValid decodes the JSON request body into T and validates it.
// On either failure it writes a 400 with the given client message and
// returns (nil, false). Validation always runs before any store access.
//
// Note that `required` on a float64 field rejects 0, so a zero price
// fails validation.
func DecodeValid[T any](w http.ResponseWriter, r *http.Request, badRequestMessage string) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONMessage(w, http.StatusBadRequest, badRequestMessage)
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSONMessage(w, http.StatusBadRequest, badRequestMessage)
		return nil, false
	}
	return &req, true
}
