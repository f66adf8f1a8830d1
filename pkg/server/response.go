package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwise/inkwise/pkg/domain"
)

// HealthResponse is the health check body.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ProcessingResponse is the success body of a conversion.
type ProcessingResponse struct {
	Success              bool    `json:"success"`
	Message              string  `json:"message"`
	ThresholdValue       float64 `json:"threshold_value"`
	OutputFilename       string  `json:"output_filename"`
	ProcessedImageBase64 string  `json:"processed_image_base64"`
}

// ErrorResponse is the failure envelope. No stack traces or internal paths are
// ever included.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// respondResult sends the success envelope for a completed conversion.
func respondResult(c *gin.Context, result *domain.ProcessingResult) {
	c.JSON(http.StatusOK, ProcessingResponse{
		Success:              true,
		Message:              "Image processed successfully",
		ThresholdValue:       result.ThresholdValue,
		OutputFilename:       result.OutputFilename,
		ProcessedImageBase64: result.DataURL,
	})
}

// respondError maps the error to its HTTP status and sends the failure
// envelope with the human-readable message only.
func respondError(c *gin.Context, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		appErr = domain.NewAppError(domain.ErrCodeInternal, "Internal server error").WithError(err)
	}

	c.JSON(appErr.StatusCode, ErrorResponse{
		Success: false,
		Error:   appErr.Message,
	})
}
