package handler

import (
	"github.com/gameshelf/backend/internal/errs"
	"github.com/gameshelf/backend/internal/model"
	"github.com/gameshelf/backend/internal/server"
	"github.com/gameshelf/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// CategoryHandler exposes the /api/categories resource.
type CategoryHandler struct {
	Handler
	services *service.Services
}

func NewCategoryHandler(s *server.Server, services *service.Services) *CategoryHandler {
	return &CategoryHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

type ListCategoriesRequest struct{}

func (r *ListCategoriesRequest) Validate() error { return nil }

type GetCategoryRequest struct {
	ID int64 `param:"id"`
}

func (r *GetCategoryRequest) Validate() error { return nil }

// CategoryBodyRequest is the create/update body; name is the only
// writable field.
type CategoryBodyRequest struct {
	ID   int64   `param:"id" json:"-"`
	Name *string `json:"name"`
}

func (r *CategoryBodyRequest) Validate() error {
	if r.Name == nil || *r.Name == "" {
		return errs.NewBadRequestError("Missing required fields: name", &codeMissingFields, []errs.FieldError{
			{Field: "name", Error: "is required"},
		})
	}
	return nil
}

type DeleteCategoryRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteCategoryRequest) Validate() error { return nil }

func (h *CategoryHandler) List(c echo.Context, req *ListCategoriesRequest) ([]model.Category, error) {
	return h.services.Category.List(c.Request().Context())
}

func (h *CategoryHandler) Get(c echo.Context, req *GetCategoryRequest) (*model.Category, error) {
	return h.services.Category.Get(c.Request().Context(), req.ID)
}

func (h *CategoryHandler) Create(c echo.Context, req *CategoryBodyRequest) (*model.Category, error) {
	return h.services.Category.Create(c.Request().Context(), *req.Name)
}

func (h *CategoryHandler) Update(c echo.Context, req *CategoryBodyRequest) (*model.Category, error) {
	return h.services.Category.Update(c.Request().Context(), req.ID, *req.Name)
}

func (h *CategoryHandler) Delete(c echo.Context, req *DeleteCategoryRequest) error {
	return h.services.Category.Delete(c.Request().Context(), req.ID)
}
