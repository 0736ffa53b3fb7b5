package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"concert-log-system/models"
	"concert-log-system/utils"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type VenueService struct {
	DB *gorm.DB
}

func NewVenueService(db *gorm.DB) *VenueService {
	return &VenueService{DB: db}
}

// CreateVenue inserts a venue. The slug includes the city since venue names
// repeat across towns ("The Roxy").
func (s *VenueService) CreateVenue(name, city, state, country string, capacity int) (*models.Venue, error) {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	if name == "" || city == "" {
		return nil, errors.New("venue name and city are required")
	}
	venue := models.Venue{
		ID:       uuid.NewString(),
		Name:     name,
		Slug:     slug.Make(name + " " + city),
		City:     city,
		State:    strings.TrimSpace(state),
		Country:  strings.TrimSpace(country),
		Capacity: capacity,
	}
	if err := s.DB.Create(&venue).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("venue slug %q already exists", venue.Slug)
		}
		return nil, err
	}
	return &venue, nil
}

func (s *VenueService) GetVenueBySlug(venueSlug string) (*models.Venue, error) {
	var venue models.Venue
	if err := s.DB.Where("slug = ?", venueSlug).First(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// SearchVenues lists venues filtered by name or city.
func (s *VenueService) SearchVenues(query string, limit int) ([]models.Venue, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	db := s.DB.Model(&models.Venue{}).Order("name ASC").Limit(limit)
	if query != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", term, term)
	}
	var venues []models.Venue
	if err := db.Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// SetVenueImage uploads the image to R2 and stores the CDN URL.
func (s *VenueService) SetVenueImage(venueID string, file *multipart.FileHeader) (string, error) {
	var venue models.Venue
	if err := s.DB.Where("id = ?", venueID).First(&venue).Error; err != nil {
		return "", err
	}
	url, err := utils.UploadFileToR2(file, fmt.Sprintf("venues/%s/%s", venue.Slug, file.Filename))
	if err != nil {
		return "", err
	}
	venue.ImageURL = url
	if err := s.DB.Save(&venue).Error; err != nil {
		return "", err
	}
	return url, nil
}
