package models

import "time"

// BadgePointsEntry is a denormalized leaderboard row (total badge points per
// user), recomputed periodically by the scheduler rather than on read.
type BadgePointsEntry struct {
	ID             string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string    `gorm:"uniqueIndex;not null" json:"external_user_id"`
	TotalPoints    int       `gorm:"default:0" json:"total_points"`
	BadgeCount     int       `gorm:"default:0" json:"badge_count"`
	Rank           int       `gorm:"index" json:"rank"`
	ComputedAt     time.Time `json:"computed_at"`
}
