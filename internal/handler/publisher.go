package handler

import (
	"github.com/gameshelf/backend/internal/errs"
	"github.com/gameshelf/backend/internal/model"
	"github.com/gameshelf/backend/internal/server"
	"github.com/gameshelf/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// PublisherHandler exposes the /api/publishers resource.
type PublisherHandler struct {
	Handler
	services *service.Services
}

func NewPublisherHandler(s *server.Server, services *service.Services) *PublisherHandler {
	return &PublisherHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

type ListPublishersRequest struct{}

func (r *ListPublishersRequest) Validate() error { return nil }

type GetPublisherRequest struct {
	ID int64 `param:"id"`
}

func (r *GetPublisherRequest) Validate() error { return nil }

// PublisherBodyRequest is the create/update body; name is the only
// writable field.
type PublisherBodyRequest struct {
	ID   int64   `param:"id" json:"-"`
	Name *string `json:"name"`
}

func (r *PublisherBodyRequest) Validate() error {
	if r.Name == nil || *r.Name == "" {
		return errs.NewBadRequestError("Missing required fields: name", &codeMissingFields, []errs.FieldError{
			{Field: "name", Error: "is required"},
		})
	}
	return nil
}

type DeletePublisherRequest struct {
	ID int64 `param:"id"`
}

func (r *DeletePublisherRequest) Validate() error { return nil }

func (h *PublisherHandler) List(c echo.Context, req *ListPublishersRequest) ([]model.Publisher, error) {
	return h.services.Publisher.List(c.Request().Context())
}

func (h *PublisherHandler) Get(c echo.Context, req *GetPublisherRequest) (*model.Publisher, error) {
	return h.services.Publisher.Get(c.Request().Context(), req.ID)
}

func (h *PublisherHandler) Create(c echo.Context, req *PublisherBodyRequest) (*model.Publisher, error) {
	return h.services.Publisher.Create(c.Request().Context(), *req.Name)
}

func (h *PublisherHandler) Update(c echo.Context, req *PublisherBodyRequest) (*model.Publisher, error) {
	return h.services.Publisher.Update(c.Request().Context(), req.ID, *req.Name)
}

func (h *PublisherHandler) Delete(c echo.Context, req *DeletePublisherRequest) error {
	return h.services.Publisher.Delete(c.Request().Context(), req.ID)
}
