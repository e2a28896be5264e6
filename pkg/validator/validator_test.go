package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/aquacatalog/pkg/validator"
)

type sampleStruct struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required"`
	Homepage string `json:"homepage" validate:"omitempty,url"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{Username: "admin", Password: "secret"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["username"] != "This field is required" {
		t.Errorf("unexpected username message: %q", m["username"])
	}
	if m["password"] != "This field is required" {
		t.Errorf("unexpected password message: %q", m["password"])
	}
}

func TestFormatValidationErrors_url(t *testing.T) {
	s := sampleStruct{Username: "admin", Password: "x", Homepage: "not a url"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["homepage"] != "Must be a valid URL" {
		t.Errorf("unexpected homepage message: %q", m["homepage"])
	}
}

func TestFormatValidationErrors_nonValidatorError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(nil)
	if len(m) != 0 {
		t.Errorf("expected empty map for nil error, got %v", m)
	}
}

func TestValidateRequest_success(t *testing.T) {
	body := strings.NewReader(`{"username":"admin","password":"secret"}`)
	r := httptest.NewRequest(http.MethodPost, "/", body)
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[sampleStruct](w, r)
	if !ok {
		t.Fatalf("expected ok, response: %d %s", w.Code, w.Body.String())
	}
	if req.Username != "admin" {
		t.Errorf("unexpected username: %q", req.Username)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[sampleStruct](w, r); ok {
		t.Fatal("expected failure for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestValidateRequest_validationFailure(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"admin"}`))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[sampleStruct](w, r); ok {
		t.Fatal("expected failure for missing password")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}
