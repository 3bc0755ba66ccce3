package router

import (
	"net/http"

	"github.com/gameshelf/backend/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes wires the /api resource groups to their handlers.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	games := api.Group("/games")
	games.GET("", handler.Handle(h.Game.List, http.StatusOK))
	games.GET("/:id", handler.Handle(h.Game.Get, http.StatusOK))
	games.POST("", handler.Handle(h.Game.Create, http.StatusCreated))
	games.PUT("/:id", handler.Handle(h.Game.Update, http.StatusOK))
	games.DELETE("/:id", handler.HandleNoContent(h.Game.Delete, http.StatusNoContent))

	publishers := api.Group("/publishers")
	publishers.GET("", handler.Handle(h.Publisher.List, http.StatusOK))
	publishers.GET("/:id", handler.Handle(h.Publisher.Get, http.StatusOK))
	publishers.POST("", handler.Handle(h.Publisher.Create, http.StatusCreated))
	publishers.PUT("/:id", handler.Handle(h.Publisher.Update, http.StatusOK))
	publishers.DELETE("/:id", handler.HandleNoContent(h.Publisher.Delete, http.StatusNoContent))

	categories := api.Group("/categories")
	categories.GET("", handler.Handle(h.Category.List, http.StatusOK))
	categories.GET("/:id", handler.Handle(h.Category.Get, http.StatusOK))
	categories.POST("", handler.Handle(h.Category.Create, http.StatusCreated))
	categories.PUT("/:id", handler.Handle(h.Category.Update, http.StatusOK))
	categories.DELETE("/:id", handler.HandleNoContent(h.Category.Delete, http.StatusNoContent))
}
