package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestHTTPErrorWireShape(t *testing.T) {
	code := "GAME_NOT_FOUND"
	body, err := json.Marshal(NewNotFoundError("Game not found", &code))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// Code and Status never reach clients; a plain 404 body is exactly
	// the error message.
	if got := string(body); got != `{"error":"Game not found"}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestHTTPErrorWireShapeWithFields(t *testing.T) {
	httpErr := NewBadRequestError("Missing required fields: title", nil, []FieldError{
		{Field: "title", Error: "is required"},
	})

	body, err := json.Marshal(httpErr)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"error":"Missing required fields: title","fields":[{"field":"title","error":"is required"}]}`
	if got := string(body); got != want {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestConstructorDefaults(t *testing.T) {
	badReq := NewBadRequestError("nope", nil, nil)
	if badReq.Code != "BAD_REQUEST" || badReq.Status != http.StatusBadRequest {
		t.Errorf("unexpected defaults: %+v", badReq)
	}

	internal := NewInternalServerError()
	if internal.Code != "INTERNAL_SERVER_ERROR" || internal.Status != http.StatusInternalServerError {
		t.Errorf("unexpected defaults: %+v", internal)
	}
	if internal.Message != "Internal Server Error" {
		t.Errorf("unexpected message: %q", internal.Message)
	}
}

func TestIsMatchesOnType(t *testing.T) {
	err := error(NewNotFoundError("gone", nil))

	if !errors.Is(err, &HTTPError{}) {
		t.Error("expected errors.Is to match any *HTTPError")
	}
}

func TestWithMessage(t *testing.T) {
	code := "CUSTOM"
	original := NewBadRequestError("first", &code, nil)
	copied := original.WithMessage("second")

	if copied.Message != "second" || copied.Code != "CUSTOM" || copied.Status != original.Status {
		t.Errorf("unexpected copy: %+v", copied)
	}
	if original.Message != "first" {
		t.Errorf("original mutated: %+v", original)
	}
}
