package errs

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pkg/errors"
)

func marshal(t *testing.T, v any) string {
	t.Helper()

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(raw)
}

// The 401 and 403 bodies are literal wire contracts; clients match on the
// exact JSON.
func TestUnauthorizedBody(t *testing.T) {
	err := NewUnauthorizedError()

	if err.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", err.Status)
	}
	if got := marshal(t, err); got != `{"error":true,"message":"unauthorized access"}` {
		t.Errorf("body = %s", got)
	}
}

func TestForbiddenBodyHasNoErrorKey(t *testing.T) {
	err := NewForbiddenError()

	if err.Status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", err.Status)
	}
	if got := marshal(t, err); got != `{"message":"forbidden access"}` {
		t.Errorf("body = %s", got)
	}
}

func TestBadRequestCarriesFieldErrors(t *testing.T) {
	err := NewBadRequestError("Validation failed", []FieldError{
		{Field: "email", Error: "is required"},
	})

	want := `{"error":true,"message":"Validation failed","errors":[{"field":"email","error":"is required"}]}`
	if got := marshal(t, err); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestInternalServerErrorIsGeneric(t *testing.T) {
	err := NewInternalServerError()

	if got := marshal(t, err); got != `{"error":true,"message":"internal server error"}` {
		t.Errorf("body = %s", got)
	}
}

func TestIsMatchesOnType(t *testing.T) {
	wrapped := errors.Wrap(NewForbiddenError(), "guard")

	if !errors.Is(wrapped, &HTTPError{}) {
		t.Error("wrapped HTTPError not matched by errors.Is")
	}

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("errors.As failed")
	}
	if httpErr.Status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", httpErr.Status)
	}
}

func TestWithMessageCopies(t *testing.T) {
	base := NewNotFoundError("record not found")
	custom := base.WithMessage("service not found")

	if base.Message != "record not found" {
		t.Errorf("base mutated: %s", base.Message)
	}
	if custom.Message != "service not found" || custom.Status != base.Status {
		t.Errorf("copy = %+v", custom)
	}
}
