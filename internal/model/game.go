package model

import "time"

// Game is a catalog entry referencing a publisher and a category.
//
// Both references are nullable: a game whose publisher or category was
// never set (or data predating the references) still lists, with the
// nested objects rendered as null. When set, the database enforces that
// the referenced rows exist.
type Game struct {
	ID          int64    `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"not null" json:"description"`
	StarRating  *float64 `gorm:"check:chk_games_star_rating,star_rating >= 0 AND star_rating <= 5" json:"star_rating"`

	CategoryID  *int64 `gorm:"index" json:"category_id"`
	PublisherID *int64 `gorm:"index" json:"publisher_id"`

	// Loaded via the outer-join read path; nil when the reference is
	// unset, so clients see "category": null rather than a zero object.
	Category  *Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Publisher *Publisher `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"publisher"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
