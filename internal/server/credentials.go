package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	credentialdomain "github.com/smallbiznis/sapbridge/internal/credential/domain"
)

func (s *Server) ListCredentials(c *gin.Context) {
	resp, err := s.credentialSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "credentials": resp})
}

func (s *Server) CreateCredential(c *gin.Context) {
	var req credentialdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError(msgInvalidJSON))
		return
	}

	resp, err := s.credentialSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "credential": resp})
}

func (s *Server) DeactivateCredential(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.credentialSvc.Deactivate(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
