package domain_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwise/inkwise/pkg/domain"
)

func TestNewAppError(t *testing.T) {
	err := domain.NewAppError(domain.ErrCodeNoImageField, "No image field found in request")

	assert.Equal(t, domain.ErrCodeNoImageField, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "[NO_IMAGE_FIELD] No image field found in request", err.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := domain.NewAppError(domain.ErrCodeIOFailure, "Error writing to temporary file").WithError(cause)

	assert.ErrorIs(t, err, cause)

	var appErr *domain.AppError
	require.ErrorAs(t, error(err), &appErr)
	assert.Equal(t, domain.ErrCodeIOFailure, appErr.Code)
}

func TestAppError_WithDetails(t *testing.T) {
	err := domain.NewAppError(domain.ErrCodeRequestTooLarge, "too big").
		WithDetails("size", 123).
		WithDetails("max", 10)

	assert.Equal(t, 123, err.Details["size"])
	assert.Equal(t, 10, err.Details["max"])
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code domain.AppErrorCode
		want int
	}{
		{domain.ErrCodeNoImageField, http.StatusBadRequest},
		{domain.ErrCodeMalformedStream, http.StatusBadRequest},
		{domain.ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{domain.ErrCodeIOFailure, http.StatusInternalServerError},
		{domain.ErrCodeUnreadableImage, http.StatusInternalServerError},
		{domain.ErrCodeEncodeFailure, http.StatusInternalServerError},
		{domain.ErrCodeInternal, http.StatusInternalServerError},
		{domain.AppErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.GetHTTPStatus(tt.code))
		})
	}
}
