package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"concert-log-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeService struct {
	DB *gorm.DB
}

func NewBadgeService(db *gorm.DB) *BadgeService {
	return &BadgeService{DB: db}
}

// CheckOptions controls one badge check. EventID, when set, is recorded on any
// award created during the check as the show that tipped it over.
type CheckOptions struct {
	Award   bool
	EventID *string
}

type BadgeCheckResult struct {
	NewBadges []models.BadgeDefinition `json:"new_badges"`
	Progress  []models.BadgeProgress   `json:"progress"`
}

// EnsureCatalog upserts the durable badges table to match models.BadgeCatalog,
// keyed by the stable badge key. Idempotent, safe to run on every request;
// every display/criterion column is overwritten so the catalog in code always
// wins. Must complete before awards are read or written: awards attach to the
// durable badge id.
func (s *BadgeService) EnsureCatalog() error {
	rows := make([]models.Badge, 0, len(models.BadgeCatalog))
	for _, def := range models.BadgeCatalog {
		rows = append(rows, models.Badge{
			Key:            def.Key,
			Name:           def.Name,
			Description:    def.Description,
			Category:       def.Category,
			Rarity:         def.Rarity,
			IconURL:        def.Icon,
			Points:         def.Points,
			CriterionType:  def.Criterion.Type,
			CriterionCount: def.Criterion.Count,
			CriterionGenre: def.Criterion.Genre,
			CriterionMiles: def.Criterion.Miles,
		})
	}

	if err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "category", "rarity", "icon_url", "points",
			"criterion_type", "criterion_count", "criterion_genre", "criterion_miles",
			"updated_at",
		}),
	}).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to sync badge catalog: %w", err)
	}
	return nil
}

// CheckBadges evaluates every unearned catalog badge against a fresh stats
// snapshot. With Award set it commits new awards; a duplicate-key error on the
// insert means another concurrent check already recorded the same pair and is
// swallowed, not surfaced. Any other persistence failure propagates as-is.
func (s *BadgeService) CheckBadges(externalUserID string, opts CheckOptions) (*BadgeCheckResult, error) {
	if err := s.EnsureCatalog(); err != nil {
		return nil, err
	}

	earned, err := s.earnedKeys(externalUserID)
	if err != nil {
		return nil, err
	}

	badgeIDs, err := s.badgeIDsByKey()
	if err != nil {
		return nil, err
	}

	logs, err := s.loadUserLogs(externalUserID)
	if err != nil {
		return nil, err
	}
	stats := ComputeUserStats(logs)

	result := &BadgeCheckResult{
		NewBadges: []models.BadgeDefinition{},
		Progress:  []models.BadgeProgress{},
	}

	for _, def := range models.BadgeCatalog {
		if earned[def.Key] {
			continue
		}

		res := EvaluateCriterion(def.Criterion, stats)

		if res.Earned && opts.Award {
			badgeID, ok := badgeIDs[def.Key]
			if !ok {
				// Catalog row missing right after sync — skip rather than fail the whole check.
				log.Printf("⚠️ No durable badge row for key %s, skipping award", def.Key)
				continue
			}
			award := models.UserBadge{
				ExternalUserID: externalUserID,
				BadgeID:        badgeID,
				EventID:        opts.EventID,
			}
			if err := s.DB.Create(&award).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// Benign race: a concurrent check inserted this pair first.
					earned[def.Key] = true
					continue
				}
				return nil, err
			}
			result.NewBadges = append(result.NewBadges, def)
			earned[def.Key] = true
			log.Printf("🎖️ Badge awarded: %s → %s", def.Name, externalUserID)
			continue
		}

		// Not earned, or a read-only check: report progress only. Read-only
		// checks report satisfied criteria here too, still flagged unearned,
		// since nothing was committed.
		result.Progress = append(result.Progress, models.BadgeProgress{
			Badge:      def,
			Current:    res.Current,
			Target:     res.Target,
			Percentage: ProgressPercentage(res.Current, res.Target),
			IsEarned:   false,
		})
	}

	return result, nil
}

// GetBadgeProgress is the read-only variant: full evaluation, zero writes
// beyond the idempotent catalog sync.
func (s *BadgeService) GetBadgeProgress(externalUserID string) ([]models.BadgeProgress, error) {
	result, err := s.CheckBadges(externalUserID, CheckOptions{Award: false})
	if err != nil {
		return nil, err
	}
	return result.Progress, nil
}

// GetEarnedBadges returns a user's awards newest first, joined to the
// in-process catalog. Awards whose key has been retired from the catalog are
// dropped rather than crashing the read.
func (s *BadgeService) GetEarnedBadges(externalUserID string) ([]models.EarnedBadge, error) {
	if err := s.EnsureCatalog(); err != nil {
		return nil, err
	}

	type awardRow struct {
		ID        string
		Key       string
		AwardedAt time.Time
		EventID   *string
	}
	var rows []awardRow
	if err := s.DB.Table("user_badges").
		Select("user_badges.id, badges.key, user_badges.awarded_at, user_badges.event_id").
		Joins("JOIN badges ON badges.id = user_badges.badge_id").
		Where("user_badges.external_user_id = ?", externalUserID).
		Order("user_badges.awarded_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	defs := make(map[string]models.BadgeDefinition, len(models.BadgeCatalog))
	for _, def := range models.BadgeCatalog {
		defs[def.Key] = def
	}

	earned := make([]models.EarnedBadge, 0, len(rows))
	for _, row := range rows {
		def, ok := defs[row.Key]
		if !ok {
			continue
		}
		earned = append(earned, models.EarnedBadge{
			ID:       row.ID,
			Badge:    def,
			EarnedAt: row.AwardedAt,
			EventID:  row.EventID,
		})
	}
	return earned, nil
}

// GetUserStats exposes the snapshot directly (profile stats endpoint).
func (s *BadgeService) GetUserStats(externalUserID string) (*UserStats, error) {
	logs, err := s.loadUserLogs(externalUserID)
	if err != nil {
		return nil, err
	}
	return ComputeUserStats(logs), nil
}

func (s *BadgeService) earnedKeys(externalUserID string) (map[string]bool, error) {
	var keys []string
	if err := s.DB.Model(&models.UserBadge{}).
		Joins("JOIN badges ON badges.id = user_badges.badge_id").
		Where("user_badges.external_user_id = ?", externalUserID).
		Pluck("badges.key", &keys).Error; err != nil {
		return nil, err
	}
	earned := make(map[string]bool, len(keys))
	for _, k := range keys {
		earned[k] = true
	}
	return earned, nil
}

func (s *BadgeService) badgeIDsByKey() (map[string]string, error) {
	var badges []models.Badge
	if err := s.DB.Find(&badges).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]string, len(badges))
	for _, b := range badges {
		ids[b.Key] = b.ID
	}
	return ids, nil
}

// loadUserLogs pulls the full history joined with event/artist/venue data,
// ordered by show date ascending (the streak computation depends on it).
func (s *BadgeService) loadUserLogs(externalUserID string) ([]models.EventLog, error) {
	var logs []models.EventLog
	if err := s.DB.
		Joins("JOIN events ON events.id = event_logs.event_id").
		Where("event_logs.external_user_id = ?", externalUserID).
		Order("events.date ASC").
		Preload("Event.Artist").
		Preload("Event.Venue").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
