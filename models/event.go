package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is one show: an artist playing a venue on a date.
type Event struct {
	ID       string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name     string    `json:"name"` // tour/show name, optional
	ArtistID string    `gorm:"index;not null" json:"artist_id"`
	Artist   Artist    `gorm:"foreignKey:ArtistID" json:"artist"`
	VenueID  string    `gorm:"index;not null" json:"venue_id"`
	Venue    Venue     `gorm:"foreignKey:VenueID" json:"venue"`
	Date     time.Time `gorm:"index;not null" json:"date"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// EventLog records that a user attended an event. One row per attendance;
// the badge engine reads these joined with Event/Artist/Venue and nothing else.
type EventLog struct {
	ID             string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string  `gorm:"index;not null;uniqueIndex:idx_user_event_once" json:"external_user_id"`
	EventID        string  `gorm:"not null;uniqueIndex:idx_user_event_once" json:"event_id"`
	Event          Event   `gorm:"foreignKey:EventID" json:"event"`
	Notes          string  `gorm:"type:text" json:"notes,omitempty"`
	Rating         *int    `gorm:"check:rating >= 1 and rating <= 5" json:"rating,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
