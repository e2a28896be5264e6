// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/aquacatalog/pkg/auth"
	"github.com/ghuser/aquacatalog/pkg/httpx"
	catalogdomain "github.com/ghuser/aquacatalog/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; the
// underlying message is passed through on purpose (upload and store failures
// surface their cause to the admin UI).
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrTokenInvalid):
		return http.StatusUnauthorized // 401
	case errors.Is(err, catalogdomain.ErrModelNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrInvalidModelID),
		errors.Is(err, catalogdomain.ErrMissingImage),
		errors.Is(err, catalogdomain.ErrUnsupportedFileType),
		errors.Is(err, catalogdomain.ErrMissingRequiredField),
		errors.Is(err, catalogdomain.ErrInvalidPrice):
		return http.StatusBadRequest // 400
	case errors.Is(err, catalogdomain.ErrUploadFailed):
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
