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

// CategoryService implements CRUD for the category reference entity.
type CategoryService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewCategoryService(s *server.Server, repos *repository.Repositories) *CategoryService {
	return &CategoryService{server: s, repos: repos}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repos.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.repos.Categories.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFoundError("Category not found", &codeCategoryNotFound)
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	category := &model.Category{Name: name}
	if err := s.repos.Categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*model.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.repos.Categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	category, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repos.Categories.Delete(ctx, category)
}
