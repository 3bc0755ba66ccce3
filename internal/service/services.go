package service

import (
	"github.com/gameshelf/backend/internal/repository"
	"github.com/gameshelf/backend/internal/server"
)

// Services is a container grouping all business services.
type Services struct {
	Game      *GameService
	Publisher *PublisherService
	Category  *CategoryService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Game:      NewGameService(s, repos),
		Publisher: NewPublisherService(s, repos),
		Category:  NewCategoryService(s, repos),
	}, nil
}
