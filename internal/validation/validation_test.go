package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/errs"
	"github.com/pkg/errors"
)

type samplePayload struct {
	Email string  `json:"email" validate:"required,email"`
	Price float64 `json:"price" validate:"omitempty,gt=0"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

type customPayload struct {
	Value string `json:"value"`
}

func (p *customPayload) Validate() error {
	if p.Value != "ok" {
		return CustomValidationErrors{{Field: "value", Message: "must be ok"}}
	}
	return nil
}

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *errs.HTTPError", err)
	}
	return httpErr
}

func TestBindAndValidateOK(t *testing.T) {
	payload := &samplePayload{}
	if err := BindAndValidate(newContext(`{"email":"a@x.com","price":19.99}`), payload); err != nil {
		t.Fatalf("BindAndValidate: %v", err)
	}
	if payload.Email != "a@x.com" || payload.Price != 19.99 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	err := BindAndValidate(newContext(`{"email":`), &samplePayload{})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
	if httpErr.Message != "malformed request payload" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestBindAndValidateMissingRequired(t *testing.T) {
	err := BindAndValidate(newContext(`{"price":5}`), &samplePayload{})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", httpErr.Status)
	}
	if len(httpErr.Errors) != 1 {
		t.Fatalf("field errors = %v", httpErr.Errors)
	}
	if httpErr.Errors[0].Field != "email" || httpErr.Errors[0].Error != "is required" {
		t.Errorf("field error = %+v", httpErr.Errors[0])
	}
}

func TestBindAndValidateBadEmail(t *testing.T) {
	err := BindAndValidate(newContext(`{"email":"nope"}`), &samplePayload{})

	httpErr := asHTTPError(t, err)
	if httpErr.Errors[0].Error != "must be a valid email address" {
		t.Errorf("field error = %+v", httpErr.Errors[0])
	}
}

func TestBindAndValidateRangeTag(t *testing.T) {
	err := BindAndValidate(newContext(`{"email":"a@x.com","price":-1}`), &samplePayload{})

	httpErr := asHTTPError(t, err)
	if httpErr.Errors[0].Field != "price" || httpErr.Errors[0].Error != "must be greater than 0" {
		t.Errorf("field error = %+v", httpErr.Errors[0])
	}
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{"value":"bad"}`), &customPayload{})

	httpErr := asHTTPError(t, err)
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Error != "must be ok" {
		t.Errorf("field errors = %v", httpErr.Errors)
	}
}
