package repository

import (
	"context"

	"github.com/gameshelf/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository persists games and reads them with their references.
type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// withRefs is the base read query: games left-joined to categories and
// publishers, so rows with unset references still come back (with the
// nested objects nil).
func (r *GameRepository) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("Category").
		Joins("Publisher")
}

// List returns all games with their joined references, oldest first.
func (r *GameRepository) List(ctx context.Context) ([]model.Game, error) {
	var games []model.Game
	if err := r.withRefs(ctx).Order("games.id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// GetByID returns one game with its joined references.
// Returns gorm.ErrRecordNotFound when absent.
func (r *GameRepository) GetByID(ctx context.Context, id int64) (*model.Game, error) {
	var game model.Game
	if err := r.withRefs(ctx).First(&game, "games.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// Create inserts a new game row. Associations are omitted so loaded
// Category/Publisher structs are never written back.
func (r *GameRepository) Create(ctx context.Context, game *model.Game) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(game).Error
}

// Update persists all columns of the game row.
func (r *GameRepository) Update(ctx context.Context, game *model.Game) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(game).Error
}

// Delete removes the game row.
func (r *GameRepository) Delete(ctx context.Context, game *model.Game) error {
	return r.db.WithContext(ctx).Delete(game).Error
}
