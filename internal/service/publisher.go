package service

import (
	"context"
	"errors"

	"github.com/gameshelf/backend/internal/errs"
	"github.com/gameshelf/backend/internal/model"
	"github.com/gameshelf/backend/internal/repository"
	"github.com/gameshelf/backend/internal/server"
	"gorm.io/gorm"
)

// PublisherService implements CRUD for the publisher reference entity.
//
// Deleting a publisher still referenced by games is rejected by the
// database (ON DELETE RESTRICT) and surfaces as an integrity error.
type PublisherService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewPublisherService(s *server.Server, repos *repository.Repositories) *PublisherService {
	return &PublisherService{server: s, repos: repos}
}

func (s *PublisherService) List(ctx context.Context) ([]model.Publisher, error) {
	publishers, err := s.repos.Publishers.List(ctx)
	if err != nil {
		return nil, err
	}
	if publishers == nil {
		publishers = []model.Publisher{}
	}
	return publishers, nil
}

func (s *PublisherService) Get(ctx context.Context, id int64) (*model.Publisher, error) {
	publisher, err := s.repos.Publishers.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFoundError("Publisher not found", &codePublisherNotFound)
	}
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

func (s *PublisherService) Create(ctx context.Context, name string) (*model.Publisher, error) {
	publisher := &model.Publisher{Name: name}
	if err := s.repos.Publishers.Create(ctx, publisher); err != nil {
		return nil, err
	}
	return publisher, nil
}

func (s *PublisherService) Update(ctx context.Context, id int64, name string) (*model.Publisher, error) {
	publisher, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	publisher.Name = name
	if err := s.repos.Publishers.Update(ctx, publisher); err != nil {
		return nil, err
	}
	return publisher, nil
}

func (s *PublisherService) Delete(ctx context.Context, id int64) error {
	publisher, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repos.Publishers.Delete(ctx, publisher)
}
