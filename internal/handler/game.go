package handler

import (
	"fmt"
	"strings"

	"github.com/gameshelf/backend/internal/errs"
	"github.com/gameshelf/backend/internal/model"
	"github.com/gameshelf/backend/internal/server"
	"github.com/gameshelf/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// GameHandler exposes the /api/games resource.
type GameHandler struct {
	Handler
	services *service.Services
}

func NewGameHandler(s *server.Server, services *service.Services) *GameHandler {
	return &GameHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// --- Request payloads --------------------------------------------------------

// ListGamesRequest has no inputs; the type exists so listing runs
// through the same pipeline as every other endpoint.
type ListGamesRequest struct{}

func (r *ListGamesRequest) Validate() error { return nil }

// GetGameRequest identifies one game by path id.
type GetGameRequest struct {
	ID int64 `param:"id"`
}

func (r *GetGameRequest) Validate() error { return nil }

// CreateGameRequest is the POST /api/games body. Fields are pointers so
// absence is distinguishable from zero values, which is what lets the
// error message name exactly the fields that were missing.
type CreateGameRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CategoryID  *int64   `json:"category_id"`
	PublisherID *int64   `json:"publisher_id"`
	StarRating  *float64 `json:"star_rating"`
}

var codeMissingFields = "MISSING_REQUIRED_FIELDS"

// Validate reports every missing required field in declaration order:
// "Missing required fields: title, publisher_id".
func (r *CreateGameRequest) Validate() error {
	var missing []string
	if r.Title == nil {
		missing = append(missing, "title")
	}
	if r.Description == nil {
		missing = append(missing, "description")
	}
	if r.CategoryID == nil {
		missing = append(missing, "category_id")
	}
	if r.PublisherID == nil {
		missing = append(missing, "publisher_id")
	}

	if len(missing) > 0 {
		fieldErrors := make([]errs.FieldError, 0, len(missing))
		for _, field := range missing {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: field, Error: "is required"})
		}
		return errs.NewBadRequestError(
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
			&codeMissingFields,
			fieldErrors,
		)
	}

	return validateStarRating(r.StarRating)
}

// UpdateGameRequest is the PUT /api/games/:id body. All fields are
// optional; only supplied fields are applied.
type UpdateGameRequest struct {
	ID int64 `param:"id" json:"-"`

	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CategoryID  *int64   `json:"category_id"`
	PublisherID *int64   `json:"publisher_id"`
	StarRating  *float64 `json:"star_rating"`
}

// Validate checks only field values here. Whether the body supplied
// anything at all is judged in the service after the game is looked up,
// so a missing id answers 404 even when the body is empty.
func (r *UpdateGameRequest) Validate() error {
	return validateStarRating(r.StarRating)
}

// DeleteGameRequest identifies one game by path id.
type DeleteGameRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteGameRequest) Validate() error { return nil }

// validateStarRating bounds the optional rating. The database repeats
// this as a CHECK constraint; validating here turns the common case into
// a clear message instead of an integrity error.
func validateStarRating(rating *float64) error {
	if rating != nil && (*rating < 0 || *rating > 5) {
		return errs.NewBadRequestError("star_rating must be between 0 and 5", nil, []errs.FieldError{
			{Field: "star_rating", Error: "must be between 0 and 5"},
		})
	}
	return nil
}

// --- Endpoints ---------------------------------------------------------------

// List returns all games with their joined publisher/category data.
func (h *GameHandler) List(c echo.Context, req *ListGamesRequest) ([]model.Game, error) {
	return h.services.Game.List(c.Request().Context())
}

// Get returns one game, 404 when absent.
func (h *GameHandler) Get(c echo.Context, req *GetGameRequest) (*model.Game, error) {
	return h.services.Game.Get(c.Request().Context(), req.ID)
}

// Create persists a new game after validating its references.
func (h *GameHandler) Create(c echo.Context, req *CreateGameRequest) (*model.Game, error) {
	return h.services.Game.Create(c.Request().Context(), service.CreateGameInput{
		Title:       *req.Title,
		Description: *req.Description,
		CategoryID:  *req.CategoryID,
		PublisherID: *req.PublisherID,
		StarRating:  req.StarRating,
	})
}

// Update applies a partial update to an existing game.
func (h *GameHandler) Update(c echo.Context, req *UpdateGameRequest) (*model.Game, error) {
	return h.services.Game.Update(c.Request().Context(), req.ID, service.UpdateGameInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		PublisherID: req.PublisherID,
		StarRating:  req.StarRating,
	})
}

// Delete removes a game; the route responds 204 on success.
func (h *GameHandler) Delete(c echo.Context, req *DeleteGameRequest) error {
	return h.services.Game.Delete(c.Request().Context(), req.ID)
}
