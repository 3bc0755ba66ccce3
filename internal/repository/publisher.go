package repository

import (
	"context"
	"errors"

	"github.com/gameshelf/backend/internal/model"
	"gorm.io/gorm"
)

// PublisherRepository persists the publisher reference entity.
type PublisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) *PublisherRepository {
	return &PublisherRepository{db: db}
}

func (r *PublisherRepository) List(ctx context.Context) ([]model.Publisher, error) {
	var publishers []model.Publisher
	if err := r.db.WithContext(ctx).Order("id").Find(&publishers).Error; err != nil {
		return nil, err
	}
	return publishers, nil
}

func (r *PublisherRepository) GetByID(ctx context.Context, id int64) (*model.Publisher, error) {
	var publisher model.Publisher
	if err := r.db.WithContext(ctx).First(&publisher, id).Error; err != nil {
		return nil, err
	}
	return &publisher, nil
}

// Exists reports whether a publisher row with the given id exists.
func (r *PublisherRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var publisher model.Publisher
	err := r.db.WithContext(ctx).Select("id").First(&publisher, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PublisherRepository) Create(ctx context.Context, publisher *model.Publisher) error {
	return r.db.WithContext(ctx).Create(publisher).Error
}

func (r *PublisherRepository) Update(ctx context.Context, publisher *model.Publisher) error {
	return r.db.WithContext(ctx).Save(publisher).Error
}

func (r *PublisherRepository) Delete(ctx context.Context, publisher *model.Publisher) error {
	return r.db.WithContext(ctx).Delete(publisher).Error
}
