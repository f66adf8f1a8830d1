package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwise/inkwise/pkg/domain"
	"github.com/inkwise/inkwise/pkg/spool"
)

// handleHealth handles health check requests.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Image processing service is running",
	})
}

// handleProcess runs one upload through the conversion pipeline. Every
// temporary object belongs to a request scope released on all exit paths.
func (s *Server) handleProcess(c *gin.Context) {
	if c.Request.ContentLength > s.cfg.Upload.MaxSize {
		respondError(c, domain.NewAppError(domain.ErrCodeRequestTooLarge,
			fmt.Sprintf("Request body too large: %d bytes (max: %d)", c.Request.ContentLength, s.cfg.Upload.MaxSize)))
		return
	}

	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		respondError(c, domain.NewAppError(domain.ErrCodeMalformedStream, "Invalid multipart data"))
		return
	}

	mr, err := c.Request.MultipartReader()
	if err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeMalformedStream, "Invalid multipart data").WithError(err))
		return
	}

	scope := spool.NewScope(s.fs, s.env.SpoolDir)
	defer func() {
		if err := scope.Release(); err != nil {
			s.logger.Error("spool release failed", "error", err)
		}
	}()

	stored, err := s.ingestor.Ingest(mr, scope)
	if err != nil {
		s.logger.Error("ingestion failed", "error", err)
		respondError(c, err)
		return
	}

	result, err := s.converter.Convert(scope, stored)
	if err != nil {
		s.logger.Error("conversion failed", "error", err)
		respondError(c, err)
		return
	}

	respondResult(c, result)
}
