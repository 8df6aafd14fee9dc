package handlers

import (
	"net/http"

	"busbackend/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps a domain error to a status code and the
// `{"error": "<Kind>: <detail>"}` payload clients parse. Internal errors
// never leak their wrapped cause.
func RespondDomainError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	detail := err.Error()

	switch {
	case domain.IsFormat(err), domain.IsValidation(err):
		status = http.StatusBadRequest
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	case domain.IsDuplicateRoute(err), domain.IsSeatBooked(err):
		status = http.StatusConflict
	case domain.IsReadOnly(err), domain.IsAuthorization(err):
		status = http.StatusForbidden
	default:
		detail = "internal error"
	}

	c.JSON(status, gin.H{"error": domain.Kind(err) + ": " + detail})
}

// RespondFormatError is the shortcut for body-binding failures.
func RespondFormatError(c *gin.Context, msg string, err error) {
	RespondDomainError(c, domain.FormatError{Msg: msg, Err: err})
}
