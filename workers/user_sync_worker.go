// workers/user_sync_worker.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"concert-log-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileUser matches the JSON shape of the profile service's public feed.
type ProfileUser struct {
	ExternalID        string     `json:"external_id"`
	Username          string     `json:"username"`
	Email             string     `json:"email"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	HomeCity          *string    `json:"home_city,omitempty"`
	Bio               *string    `json:"bio,omitempty"`
	LastSeen          *time.Time `json:"last_seen,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type profileChangesResponse struct {
	Users []ProfileUser `json:"users"`
}

// ProfileSyncWorker mirrors profile-service users into concert_users so show
// logging never calls out to the profile service on the request path.
type ProfileSyncWorker struct {
	db           *gorm.DB
	interval     time.Duration
	baseURL      string
	endpointPath string
	serviceToken string
	httpClient   *http.Client
}

func NewProfileSyncWorker(db *gorm.DB, baseURL, endpointPath, serviceToken string) *ProfileSyncWorker {
	return &ProfileSyncWorker{
		db:           db,
		interval:     1 * time.Minute,
		baseURL:      baseURL,
		endpointPath: endpointPath,
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (w *ProfileSyncWorker) Start(ctx context.Context) {
	log.Println("🔁 Starting Profile Sync Worker (profile-service → concert_users)…")
	go w.run(ctx)
}

func (w *ProfileSyncWorker) run(ctx context.Context) {
	// Initial backfill from the beginning of time.
	if err := w.syncBatch(ctx, time.Time{}); err != nil {
		log.Printf("⚠️ Initial profile sync failed: %v", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.syncBatch(ctx, w.lastSyncTime()); err != nil {
				log.Printf("❌ Profile sync batch failed: %v", err)
			}
		case <-ctx.Done():
			log.Println("⏹️ Profile Sync Worker stopped")
			return
		}
	}
}

// lastSyncTime is the most recent UpdatedAt already mirrored locally.
func (w *ProfileSyncWorker) lastSyncTime() time.Time {
	var lastTime time.Time
	err := w.db.Raw("SELECT MAX(updated_at) FROM concert_users WHERE deleted_at IS NULL").Scan(&lastTime).Error
	if err != nil || lastTime.IsZero() {
		return time.Unix(0, 0)
	}
	return lastTime
}

func (w *ProfileSyncWorker) syncBatch(ctx context.Context, since time.Time) error {
	sinceStr := since.UTC().Format(time.RFC3339)

	base, err := url.Parse(w.baseURL)
	if err != nil {
		return fmt.Errorf("invalid profile service URL %q: %w", w.baseURL, err)
	}
	endpoint := base.JoinPath(w.endpointPath)
	q := endpoint.Query()
	q.Set("since", sinceStr)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create profile sync request: %w", err)
	}
	req.Header.Set("X-Service-Token", w.serviceToken)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("profile sync request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("profile service non-200 response: %d — %s", resp.StatusCode, string(body))
	}

	var response profileChangesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode profile service response: %w", err)
	}

	if len(response.Users) == 0 {
		return nil
	}

	var upserted, failed int
	for _, remote := range response.Users {
		local := models.ConcertUser{
			ExternalUserID:    remote.ExternalID,
			Username:          remote.Username,
			Email:             remote.Email,
			ProfilePictureURL: remote.ProfilePictureURL,
			HomeCity:          remote.HomeCity,
			Bio:               remote.Bio,
			LastSeen:          remote.LastSeen,
			CreatedAt:         remote.CreatedAt,
			UpdatedAt:         remote.UpdatedAt,
		}

		if err := w.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username", "email", "profile_picture_url", "home_city", "bio",
				"last_seen", "created_at", "updated_at",
			}),
		}).Create(&local).Error; err != nil {
			failed++
			log.Printf("[SYNC] ⚠️ Failed to upsert concert_user (external_id=%q): %v", remote.ExternalID, err)
		} else {
			upserted++
		}
	}

	log.Printf("[SYNC] ✅ Synced %d profile(s) since %s (%d upserted, %d errors)",
		len(response.Users), sinceStr, upserted, failed)
	return nil
}
