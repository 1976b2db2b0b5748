package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	classificationdomain "github.com/smallbiznis/sapbridge/internal/classification/domain"
	contactdomain "github.com/smallbiznis/sapbridge/internal/contact/domain"
	credentialdomain "github.com/smallbiznis/sapbridge/internal/credential/domain"
	inventorydomain "github.com/smallbiznis/sapbridge/internal/inventory/domain"
	productdomain "github.com/smallbiznis/sapbridge/internal/product/domain"
)

// ValidationError carries a payload-validation failure message verbatim to
// the caller. All missing fields for a request are reported in one message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}

const (
	msgMissingHeaders     = "Missing required headers (apiKey and/or secretKey)"
	msgInvalidCredentials = "Invalid API Key or Secret Key"
	msgInvalidJSON        = "Invalid JSON payload format."
	msgInvalidEmail       = "Invalid email format."
	msgNoContactData      = "No valid contact data provided in payload."
	msgNoProductData      = "No valid product_data provided"
)

// ErrorHandlingMiddleware converts collected errors into the integration's
// fixed response envelope.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, gin.H{"status": "error", "message": message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	var codeNotFound *classificationdomain.CodeNotFoundError
	if errors.As(err, &codeNotFound) {
		return http.StatusBadRequest, codeNotFound.Error()
	}

	var locationNotFound *inventorydomain.LocationNotFoundError
	if errors.As(err, &locationNotFound) {
		return http.StatusBadRequest, locationNotFound.Error()
	}

	var contactNotFound *contactdomain.NotFoundError
	if errors.As(err, &contactNotFound) {
		return http.StatusNotFound, contactNotFound.Error()
	}

	var productNotFound *productdomain.NotFoundError
	if errors.As(err, &productNotFound) {
		return http.StatusNotFound, productNotFound.Error()
	}

	switch {
	case errors.Is(err, credentialdomain.ErrMissingCredentials):
		return http.StatusBadRequest, msgMissingHeaders
	case errors.Is(err, credentialdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, credentialdomain.ErrNotFound):
		return http.StatusNotFound, "Credential not found"
	case errors.Is(err, credentialdomain.ErrInvalidID),
		errors.Is(err, credentialdomain.ErrInvalidName):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, contactdomain.ErrInvalidEmail):
		return http.StatusBadRequest, msgInvalidEmail
	case errors.Is(err, contactdomain.ErrInvalidName):
		return http.StatusBadRequest, "Missing required contact fields: name"
	case errors.Is(err, contactdomain.ErrInvalidPhone):
		return http.StatusBadRequest, "Missing required contact fields: phone"
	case errors.Is(err, contactdomain.ErrInvalidIDSecondary):
		return http.StatusBadRequest, "Missing required contact fields: id_secondary"
	case errors.Is(err, productdomain.ErrInvalidName):
		return http.StatusBadRequest, "Missing required fields: name"
	case errors.Is(err, productdomain.ErrInvalidIDSecundarioSAP):
		return http.StatusBadRequest, "Missing required fields: id_secundario_sap"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// wrapPersistence prefixes unexpected persistence failures with the
// operation name while letting typed taxonomy errors pass through.
func wrapPersistence(prefix string, err error) error {
	if err == nil {
		return nil
	}
	if status, _ := mapError(err); status != http.StatusInternalServerError {
		return err
	}
	return &persistenceError{prefix: prefix, cause: err}
}

type persistenceError struct {
	prefix string
	cause  error
}

func (e *persistenceError) Error() string {
	return e.prefix + ": " + e.cause.Error()
}

func (e *persistenceError) Unwrap() error {
	return e.cause
}
