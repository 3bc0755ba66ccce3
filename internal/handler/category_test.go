package handler_test

import (
	"net/http"
	"testing"
)

func TestCategoryCRUD(t *testing.T) {
	api := newTestAPI(t)

	id := createCategory(t, api, "Roguelike")

	rec := doJSON(t, api, http.MethodGet, "/api/categories/"+itoa(id), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["name"]; got != "Roguelike" {
		t.Errorf("expected name Roguelike, got %v", got)
	}

	rec = doJSON(t, api, http.MethodPut, "/api/categories/"+itoa(id), `{"name":"Roguelite"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["name"]; got != "Roguelite" {
		t.Errorf("expected renamed category, got %v", got)
	}

	rec = doJSON(t, api, http.MethodDelete, "/api/categories/"+itoa(id), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, api, http.MethodGet, "/api/categories/"+itoa(id), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "Category not found" {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestCreateCategoryEmptyName(t *testing.T) {
	api := newTestAPI(t)

	rec := doJSON(t, api, http.MethodPost, "/api/categories", `{"name":""}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "Missing required fields: name" {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestDeleteCategoryReferencedByGame(t *testing.T) {
	api := newTestAPI(t)
	categoryID := createCategory(t, api, "Metroidvania")
	publisherID := createPublisher(t, api, "Konami")
	createGame(t, api, "Symphony of the Night", categoryID, publisherID)

	rec := doJSON(t, api, http.MethodDelete, "/api/categories/"+itoa(categoryID), "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "The record is referenced by or references a missing record" {
		t.Errorf("unexpected error message: %q", msg)
	}
}

func TestCategoryNotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := doJSON(t, api, http.MethodGet, "/api/categories/42", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "Category not found" {
		t.Errorf("unexpected error message: %q", msg)
	}
}
