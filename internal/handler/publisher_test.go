package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestPublisherCRUD(t *testing.T) {
	api := newTestAPI(t)

	id := createPublisher(t, api, "Valve")

	rec := doJSON(t, api, http.MethodGet, "/api/publishers/"+itoa(id), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["name"]; got != "Valve" {
		t.Errorf("expected name Valve, got %v", got)
	}

	rec = doJSON(t, api, http.MethodPut, "/api/publishers/"+itoa(id), `{"name":"Valve Software"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["name"]; got != "Valve Software" {
		t.Errorf("expected renamed publisher, got %v", got)
	}

	rec = doJSON(t, api, http.MethodGet, "/api/publishers", "")
	var publishers []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &publishers); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(publishers) != 1 {
		t.Fatalf("expected 1 publisher, got %d", len(publishers))
	}

	rec = doJSON(t, api, http.MethodDelete, "/api/publishers/"+itoa(id), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, api, http.MethodGet, "/api/publishers/"+itoa(id), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "Publisher not found" {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestCreatePublisherDuplicateName(t *testing.T) {
	api := newTestAPI(t)
	createPublisher(t, api, "Sega")

	rec := doJSON(t, api, http.MethodPost, "/api/publishers", `{"name":"Sega"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "A record with this identifier already exists" {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestDeletePublisherReferencedByGame(t *testing.T) {
	api := newTestAPI(t)
	categoryID := createCategory(t, api, "Fighting")
	publisherID := createPublisher(t, api, "SNK")
	createGame(t, api, "King of Fighters", categoryID, publisherID)

	rec := doJSON(t, api, http.MethodDelete, "/api/publishers/"+itoa(publisherID), "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "The record is referenced by or references a missing record" {
		t.Errorf("unexpected error message: %q", msg)
	}

	// The publisher survives the rejected delete.
	rec = doJSON(t, api, http.MethodGet, "/api/publishers/"+itoa(publisherID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected publisher to remain, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreatePublisherMissingName(t *testing.T) {
	api := newTestAPI(t)

	rec := doJSON(t, api, http.MethodPost, "/api/publishers", `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "Missing required fields: name" {
		t.Errorf("unexpected error message: %q", msg)
	}
}
