package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS applies the integration's fixed cross-origin policy. The allowed
// origin comes from configuration; the remaining headers never vary.
func (s *Server) CORS() gin.HandlerFunc {
	origin := s.cfg.CORSAllowedOrigin
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, apiKey, secretKey")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "3600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
