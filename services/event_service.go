package services

import (
	"errors"
	"time"

	"concert-log-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

// CreateEvent inserts a show after checking both directory references exist.
func (s *EventService) CreateEvent(name, artistID, venueID string, date time.Time) (*models.Event, error) {
	if date.IsZero() {
		return nil, errors.New("event date is required")
	}
	var artist models.Artist
	if err := s.DB.Where("id = ?", artistID).First(&artist).Error; err != nil {
		return nil, err
	}
	var venue models.Venue
	if err := s.DB.Where("id = ?", venueID).First(&venue).Error; err != nil {
		return nil, err
	}

	event := models.Event{
		ID:       uuid.NewString(),
		Name:     name,
		ArtistID: artistID,
		VenueID:  venueID,
		Date:     date,
	}
	if err := s.DB.Create(&event).Error; err != nil {
		return nil, err
	}
	event.Artist = artist
	event.Venue = venue
	return &event, nil
}

func (s *EventService) GetEvent(id string) (*models.Event, error) {
	var event models.Event
	if err := s.DB.Preload("Artist").Preload("Venue").
		Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListEvents returns shows filtered by artist/venue, newest first.
func (s *EventService) ListEvents(artistID, venueID string, limit int) ([]models.Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	db := s.DB.Model(&models.Event{}).
		Preload("Artist").Preload("Venue").
		Order("date DESC").Limit(limit)
	if artistID != "" {
		db = db.Where("artist_id = ?", artistID)
	}
	if venueID != "" {
		db = db.Where("venue_id = ?", venueID)
	}
	var events []models.Event
	if err := db.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
