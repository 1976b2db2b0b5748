package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderAPIKey    = "apiKey"
	HeaderSecretKey = "secretKey"
	HeaderRequestID = "X-Request-ID"
)

// RequestID propagates the caller's request id or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Set("request_id", id)
		c.Next()
	}
}

// CredentialRequired authenticates the SAP caller by the apiKey/secretKey
// header pair. A valid pair grants access to every integration endpoint.
func (s *Server) CredentialRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAPIKey)
		secret := c.GetHeader(HeaderSecretKey)

		if err := s.credentialSvc.Authenticate(c.Request.Context(), key, secret); err != nil {
			AbortWithError(c, err)
			return
		}

		c.Next()
	}
}
