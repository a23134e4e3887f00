package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(NotFound("product x not found")); got != KindNotFound {
		t.Errorf("Expected not_found kind, got %s", got)
	}

	wrapped := fmt.Errorf("handler: %w", Conflict("slug taken"))
	if got := KindOf(wrapped); got != KindConflict {
		t.Errorf("Expected conflict kind through wrapping, got %s", got)
	}

	if got := KindOf(errors.New("plain")); got != KindStore {
		t.Errorf("Foreign errors should default to store kind, got %s", got)
	}
}

func TestStoreKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store(cause)
	if !errors.Is(err, cause) {
		t.Error("Store should wrap the underlying cause")
	}
	if MessageOf(err) != "data store failure" {
		t.Errorf("Store message must not leak the cause, got %q", MessageOf(err))
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{Validation("bad limit"), http.StatusUnprocessableEntity},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("taken"), http.StatusConflict},
		{Unauthorized("login required"), http.StatusUnauthorized},
		{Store(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
