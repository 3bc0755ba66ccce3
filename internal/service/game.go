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

// Error codes surfaced alongside game operations.
var (
	codeGameNotFound      = "GAME_NOT_FOUND"
	codeCategoryNotFound  = "CATEGORY_NOT_FOUND"
	codePublisherNotFound = "PUBLISHER_NOT_FOUND"
)

// CreateGameInput carries the validated fields for a new game. Both
// references are mandatory on create; star rating is optional.
type CreateGameInput struct {
	Title       string
	Description string
	CategoryID  int64
	PublisherID int64
	StarRating  *float64
}

// UpdateGameInput carries a partial update: nil fields are left
// untouched on the stored game.
type UpdateGameInput struct {
	Title       *string
	Description *string
	CategoryID  *int64
	PublisherID *int64
	StarRating  *float64
}

func (in UpdateGameInput) empty() bool {
	return in.Title == nil && in.Description == nil && in.CategoryID == nil &&
		in.PublisherID == nil && in.StarRating == nil
}

// GameService implements the game resource operations.
type GameService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewGameService(s *server.Server, repos *repository.Repositories) *GameService {
	return &GameService{server: s, repos: repos}
}

// List returns all games with their joined publisher/category data.
func (s *GameService) List(ctx context.Context) ([]model.Game, error) {
	games, err := s.repos.Games.List(ctx)
	if err != nil {
		return nil, err
	}
	// An empty catalog serializes as [], not null.
	if games == nil {
		games = []model.Game{}
	}
	return games, nil
}

// Get returns one game with its joined references, or a 404 error.
func (s *GameService) Get(ctx context.Context, id int64) (*model.Game, error) {
	game, err := s.repos.Games.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFoundError("Game not found", &codeGameNotFound)
	}
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Create validates the referenced category and publisher exist, persists
// the game, and returns it with its joined references loaded.
//
// The existence checks run before the insert so clients get a named
// error; a concurrent delete can still slip through and surfaces as a
// database integrity violation (also a 400).
func (s *GameService) Create(ctx context.Context, in CreateGameInput) (*model.Game, error) {
	if err := s.checkCategoryExists(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkPublisherExists(ctx, in.PublisherID); err != nil {
		return nil, err
	}

	game := &model.Game{
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  &in.CategoryID,
		PublisherID: &in.PublisherID,
		StarRating:  in.StarRating,
	}

	if err := s.repos.Games.Create(ctx, game); err != nil {
		return nil, err
	}

	return s.repos.Games.GetByID(ctx, game.ID)
}

// Update applies a partial update: only supplied fields mutate, and
// supplied references are re-validated before anything is touched.
// Last writer wins; there is no optimistic concurrency control.
func (s *GameService) Update(ctx context.Context, id int64, in UpdateGameInput) (*model.Game, error) {
	game, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Checked after the lookup: updating a missing game is a 404 even
	// when the request carried no usable body.
	if in.empty() {
		return nil, errs.NewBadRequestError("Request body must be JSON", nil, nil)
	}

	if in.CategoryID != nil {
		if err := s.checkCategoryExists(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}
	if in.PublisherID != nil {
		if err := s.checkPublisherExists(ctx, *in.PublisherID); err != nil {
			return nil, err
		}
	}

	if in.Title != nil {
		game.Title = *in.Title
	}
	if in.Description != nil {
		game.Description = *in.Description
	}
	if in.CategoryID != nil {
		game.CategoryID = in.CategoryID
	}
	if in.PublisherID != nil {
		game.PublisherID = in.PublisherID
	}
	if in.StarRating != nil {
		game.StarRating = in.StarRating
	}

	if err := s.repos.Games.Update(ctx, game); err != nil {
		return nil, err
	}

	return s.repos.Games.GetByID(ctx, game.ID)
}

// Delete removes the game, or returns a 404 when it never existed.
func (s *GameService) Delete(ctx context.Context, id int64) error {
	game, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repos.Games.Delete(ctx, game)
}

func (s *GameService) checkCategoryExists(ctx context.Context, id int64) error {
	ok, err := s.repos.Categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewBadRequestError("Category not found", &codeCategoryNotFound, nil)
	}
	return nil
}

func (s *GameService) checkPublisherExists(ctx context.Context, id int64) error {
	ok, err := s.repos.Publishers.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewBadRequestError("Publisher not found", &codePublisherNotFound, nil)
	}
	return nil
}
