package services

import (
	"errors"
	"fmt"
	"time"

	"concert-log-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAlreadyLogged means the user has already logged this event.
var ErrAlreadyLogged = errors.New("event already logged by this user")

type EventLogService struct {
	DB     *gorm.DB
	Badges *BadgeService
}

func NewEventLogService(db *gorm.DB, badges *BadgeService) *EventLogService {
	return &EventLogService{DB: db, Badges: badges}
}

// LogEvent records attendance and immediately runs a badge check for the user
// with the new log included. Returns the created log plus any badges it
// unlocked so the host layer can surface them.
func (s *EventLogService) LogEvent(externalUserID, eventID, notes string, rating *int) (*models.EventLog, []models.BadgeDefinition, error) {
	var event models.Event
	if err := s.DB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("event %s not found", eventID)
		}
		return nil, nil, err
	}

	entry := models.EventLog{
		ID:             uuid.NewString(),
		ExternalUserID: externalUserID,
		EventID:        eventID,
		Notes:          notes,
		Rating:         rating,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, ErrAlreadyLogged
		}
		return nil, nil, err
	}

	// The award path tolerates concurrent checks for the same user; see
	// BadgeService.CheckBadges.
	check, err := s.Badges.CheckBadges(externalUserID, CheckOptions{Award: true, EventID: &entry.ID})
	if err != nil {
		// The log itself committed; surface the check failure without undoing it.
		return &entry, nil, fmt.Errorf("logged show but badge check failed: %w", err)
	}

	return &entry, check.NewBadges, nil
}

// GetUserHistory returns the user's logs newest first, paginated.
func (s *EventLogService) GetUserHistory(externalUserID string, page, size int) (map[string]interface{}, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	var total int64
	if err := s.DB.Model(&models.EventLog{}).
		Where("external_user_id = ?", externalUserID).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var logs []models.EventLog
	if err := s.DB.
		Joins("JOIN events ON events.id = event_logs.event_id").
		Where("event_logs.external_user_id = ?", externalUserID).
		Order("events.date DESC").
		Limit(size).Offset(offset).
		Preload("Event.Artist").
		Preload("Event.Venue").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return map[string]interface{}{
		"logs":        logs,
		"page":        page,
		"size":        size,
		"total_items": total,
		"total_pages": totalPages,
	}, nil
}

// GetRecentLogs returns logs for shows in the last N days.
func (s *EventLogService) GetRecentLogs(externalUserID string, days int) ([]models.EventLog, error) {
	since := time.Now().AddDate(0, 0, -days)
	var logs []models.EventLog
	err := s.DB.
		Joins("JOIN events ON events.id = event_logs.event_id").
		Where("event_logs.external_user_id = ? AND events.date >= ?", externalUserID, since).
		Order("events.date DESC").
		Preload("Event.Artist").
		Preload("Event.Venue").
		Find(&logs).Error
	return logs, err
}

// DeleteLog removes one of the user's own logs. Earned badges are never
// revoked, even if the deleted log was what earned them.
func (s *EventLogService) DeleteLog(externalUserID, logID string) error {
	res := s.DB.Where("id = ? AND external_user_id = ?", logID, externalUserID).
		Delete(&models.EventLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
