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

type ArtistService struct {
	DB *gorm.DB
}

func NewArtistService(db *gorm.DB) *ArtistService {
	return &ArtistService{DB: db}
}

// CreateArtist inserts a new artist with a URL slug derived from the name.
func (s *ArtistService) CreateArtist(name string, genres []string, bio string) (*models.Artist, error) {
	artist := models.Artist{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(name),
		Slug:   slug.Make(name),
		Genres: genres,
		Bio:    bio,
	}
	if artist.Name == "" {
		return nil, errors.New("artist name is required")
	}
	if err := s.DB.Create(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("artist slug %q already exists", artist.Slug)
		}
		return nil, err
	}
	return &artist, nil
}

func (s *ArtistService) GetArtistBySlug(artistSlug string) (*models.Artist, error) {
	var artist models.Artist
	if err := s.DB.Where("slug = ?", artistSlug).First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

// SearchArtists lists artists, optionally filtered by a case-insensitive name match.
func (s *ArtistService) SearchArtists(query string, limit int) ([]models.Artist, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	db := s.DB.Model(&models.Artist{}).Order("name ASC").Limit(limit)
	if query != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
		db = db.Where("LOWER(name) LIKE ?", term)
	}
	var artists []models.Artist
	if err := db.Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// SetArtistImage uploads the image to R2 and stores the CDN URL.
func (s *ArtistService) SetArtistImage(artistID string, file *multipart.FileHeader) (string, error) {
	var artist models.Artist
	if err := s.DB.Where("id = ?", artistID).First(&artist).Error; err != nil {
		return "", err
	}
	url, err := utils.UploadFileToR2(file, fmt.Sprintf("artists/%s/%s", artist.Slug, file.Filename))
	if err != nil {
		return "", err
	}
	artist.ImageURL = url
	if err := s.DB.Save(&artist).Error; err != nil {
		return "", err
	}
	return url, nil
}
