package handler_test

import (
	"net/http"
	"testing"
)

func TestStatusHealthy(t *testing.T) {
	api := newTestAPI(t)

	rec := doJSON(t, api, http.MethodGet, "/status", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", body["status"])
	}

	checks, ok := body["checks"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected checks object, got %v", body["checks"])
	}
	db, ok := checks["database"].(map[string]interface{})
	if !ok || db["status"] != "healthy" {
		t.Errorf("expected healthy database check, got %v", checks["database"])
	}
	// Redis is not configured in tests, so it must not be reported.
	if _, present := checks["redis"]; present {
		t.Errorf("unexpected redis check: %v", checks["redis"])
	}
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := doJSON(t, api, http.MethodGet, "/api/unknown", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "Route not found" {
		t.Errorf("unexpected error message: %q", msg)
	}
}
