package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gameshelf/backend/internal/config"
	"github.com/gameshelf/backend/internal/handler"
	"github.com/gameshelf/backend/internal/middleware"
	"github.com/gameshelf/backend/internal/repository"
	"github.com/gameshelf/backend/internal/router"
	"github.com/gameshelf/backend/internal/server"
	"github.com/gameshelf/backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// newTestAPI stands up the full router over an in-memory sqlite
// database. The pool is pinned to a single connection because each
// sqlite in-memory database exists per connection.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Path:         ":memory:",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		Observability: config.DefaultObservabilityConfig(),
	}

	log := zerolog.Nop()
	srv, err := server.New(cfg, &log, nil)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	t.Cleanup(func() {
		_ = srv.DB.Close()
	})

	repos := repository.NewRepositories(srv)
	services, err := service.NewServices(srv, repos)
	if err != nil {
		t.Fatalf("failed to build services: %v", err)
	}

	return router.New(handler.NewHandlers(srv, services), middleware.NewMiddlewares(srv))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// doJSON performs a request against the router and returns the recorded
// response. body may be empty for GET/DELETE.
func doJSON(t *testing.T, api *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// errorMessage extracts the "error" field from an error response body.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, rec)
	msg, ok := body["error"].(string)
	if !ok {
		t.Fatalf("response %q has no error message", rec.Body.String())
	}
	return msg
}

// createPublisher seeds a publisher through the API and returns its id.
func createPublisher(t *testing.T, api *echo.Echo, name string) int64 {
	t.Helper()

	rec := doJSON(t, api, http.MethodPost, "/api/publishers", fmt.Sprintf(`{"name":%q}`, name))
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed to create publisher: status %d, body %s", rec.Code, rec.Body.String())
	}
	return int64(decodeBody(t, rec)["id"].(float64))
}

// createCategory seeds a category through the API and returns its id.
func createCategory(t *testing.T, api *echo.Echo, name string) int64 {
	t.Helper()

	rec := doJSON(t, api, http.MethodPost, "/api/categories", fmt.Sprintf(`{"name":%q}`, name))
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed to create category: status %d, body %s", rec.Code, rec.Body.String())
	}
	return int64(decodeBody(t, rec)["id"].(float64))
}

// createGame seeds a game referencing the given category and publisher
// and returns its id.
func createGame(t *testing.T, api *echo.Echo, title string, categoryID, publisherID int64) int64 {
	t.Helper()

	body := fmt.Sprintf(`{"title":%q,"description":"a game","category_id":%d,"publisher_id":%d}`,
		title, categoryID, publisherID)
	rec := doJSON(t, api, http.MethodPost, "/api/games", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed to create game: status %d, body %s", rec.Code, rec.Body.String())
	}
	return int64(decodeBody(t, rec)["id"].(float64))
}
