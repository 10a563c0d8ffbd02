package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores("Too Many Requests"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", NewUnauthorizedError("no", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("no", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("no", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestBadRequestCodeOverride(t *testing.T) {
	code := "CAR_ID_EXISTS"
	err := NewBadRequestError("A new car cannot already have an ID", true, &code, nil, nil)

	assert.Equal(t, "CAR_ID_EXISTS", err.Code)
	assert.True(t, err.Override)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("name too long"))

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed: name too long", err.Message)
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("gone", false, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessage(t *testing.T) {
	base := NewBadRequestError("original", true, nil, []FieldError{{Field: "id", Error: "bad"}}, nil)
	copied := base.WithMessage("replaced")

	assert.Equal(t, "replaced", copied.Message)
	assert.Equal(t, "original", base.Message)
	assert.Equal(t, base.Code, copied.Code)
	assert.Equal(t, base.Errors, copied.Errors)
}
