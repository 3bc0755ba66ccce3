package model

import "time"

// Publisher is a reference entity games point at.
type Publisher struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null;uniqueIndex:unique_publishers_name" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
