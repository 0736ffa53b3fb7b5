// services/scheduler.go
package services

import (
	"log"
	"time"

	"concert-log-system/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm/clause"
)

// StartLeaderboardScheduler refreshes the badge-points leaderboard on a fixed
// interval. Rankings are denormalized so the leaderboard read path never
// aggregates user_badges on demand.
func (s *BadgeService) StartLeaderboardScheduler(interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if err := s.RefreshLeaderboard(); err != nil {
				log.Printf("[Scheduler] ❌ Leaderboard refresh failed: %v", err)
			}
		}),
	)
}

// RefreshLeaderboard recomputes total badge points per user and upserts the
// ranking table.
func (s *BadgeService) RefreshLeaderboard() error {
	type totalsRow struct {
		ExternalUserID string
		TotalPoints    int
		BadgeCount     int
	}
	var totals []totalsRow
	if err := s.DB.Raw(`
		SELECT ub.external_user_id, SUM(b.points) AS total_points, COUNT(*) AS badge_count
		FROM user_badges ub
		INNER JOIN badges b ON b.id = ub.badge_id
		GROUP BY ub.external_user_id
		ORDER BY total_points DESC, badge_count DESC
	`).Scan(&totals).Error; err != nil {
		return err
	}

	if len(totals) == 0 {
		return nil
	}

	now := time.Now()
	entries := make([]models.BadgePointsEntry, 0, len(totals))
	for i, row := range totals {
		entries = append(entries, models.BadgePointsEntry{
			ExternalUserID: row.ExternalUserID,
			TotalPoints:    row.TotalPoints,
			BadgeCount:     row.BadgeCount,
			Rank:           i + 1,
			ComputedAt:     now,
		})
	}

	if err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_points", "badge_count", "rank", "computed_at",
		}),
	}).Create(&entries).Error; err != nil {
		return err
	}

	log.Printf("✅ Leaderboard refreshed: %d user(s)", len(entries))
	return nil
}

// GetLeaderboard reads the top of the precomputed ranking.
func (s *BadgeService) GetLeaderboard(limit int) ([]models.BadgePointsEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	var entries []models.BadgePointsEntry
	err := s.DB.Order("rank ASC").Limit(limit).Find(&entries).Error
	return entries, err
}
