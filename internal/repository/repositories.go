package repository

import (
	"github.com/gameshelf/backend/internal/server"
)

// Repositories is a container for all repository instances, injected
// into the service layer as one object.
type Repositories struct {
	Games      *GameRepository
	Publishers *PublisherRepository
	Categories *CategoryRepository
}

// NewRepositories constructs the repository container from the shared
// application container (the ORM handle lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	orm := s.DB.ORM
	return &Repositories{
		Games:      NewGameRepository(orm),
		Publishers: NewPublisherRepository(orm),
		Categories: NewCategoryRepository(orm),
	}
}
