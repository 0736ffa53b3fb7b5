package models

import (
	"time"

	"gorm.io/gorm"
)

// Venue is a place shows happen. State and Country are optional free text;
// stats aggregation skips empty states and falls back to a default country.
type Venue struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name     string `gorm:"not null;index" json:"name"`
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	City     string `gorm:"not null" json:"city"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
	ImageURL string `gorm:"type:text" json:"image_url"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
