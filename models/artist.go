package models

import (
	"time"

	"gorm.io/gorm"
)

// Artist is a performer in the directory. Genres holds the raw genre strings
// exactly as entered; normalization into buckets happens at evaluation time,
// never at write time.
type Artist struct {
	ID       string   `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name     string   `gorm:"not null;index" json:"name"`
	Slug     string   `gorm:"uniqueIndex;not null" json:"slug"`
	Genres   []string `gorm:"serializer:json;type:jsonb" json:"genres"`
	ImageURL string   `gorm:"type:text" json:"image_url"`
	Bio      string   `gorm:"type:text" json:"bio"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
