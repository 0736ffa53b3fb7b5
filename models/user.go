package models

import (
	"time"

	"gorm.io/gorm"
)

// ConcertUser is a local snapshot of user data needed for show logging.
// Owned solely by this service; populated by the profile sync worker from the
// profile service's public feed. ExternalUserID is the identity every other
// table references.
type ConcertUser struct {
	ID                string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID    string     `gorm:"uniqueIndex;not null" json:"external_user_id"`
	Username          string     `gorm:"index;not null" json:"username"`
	Email             string     `json:"email,omitempty"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	HomeCity          *string    `json:"home_city,omitempty"`
	Bio               *string    `json:"bio,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	LastSeen          *time.Time `json:"last_seen,omitempty"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
