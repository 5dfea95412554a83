package errors

import (
	"errors"
	"testing"
)

func TestAPIError_MatchesSentinel(t *testing.T) {
	err := NewAPIError("https://example.com/x", 503, "HTTP request failed")

	if !errors.Is(err, ErrAPIRequest) {
		t.Errorf("Expected %v to match ErrAPIRequest", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("Expected errors.As to find *APIError")
	}
	if apiErr.StatusCode != 503 {
		t.Errorf("Expected status 503, got %d", apiErr.StatusCode)
	}
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := NewValidationError("api", "flickr", "must be one of: bing")

	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected %v to match ErrValidation", err)
	}
	if err.Error() != "validation failed for field 'api' with value 'flickr': must be one of: bing" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}
