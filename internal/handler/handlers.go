package handler

import (
	"github.com/gameshelf/backend/internal/server"
	"github.com/gameshelf/backend/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup receives one wired object instead of many.
type Handlers struct {
	Game      *GameHandler      // the /api/games resource
	Publisher *PublisherHandler // the /api/publishers resource
	Category  *CategoryHandler  // the /api/categories resource
	Health    *HealthHandler    // liveness/readiness endpoint
	OpenAPI   *OpenAPIHandler   // API documentation endpoints
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Game:      NewGameHandler(s, services),
		Publisher: NewPublisherHandler(s, services),
		Category:  NewCategoryHandler(s, services),
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
	}
}
