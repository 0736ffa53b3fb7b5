// handlers/badge_routes.go
package handlers

import (
	"strconv"

	"concert-log-system/middleware"
	"concert-log-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupBadgeRoutes(app *fiber.App, badgeService *services.BadgeService) {
	// 🔓 Public — still behind gateway auth, no user context needed
	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "25"))
		entries, err := badgeService.GetLeaderboard(limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load leaderboard",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"entries": entries})
	})

	// 🔐 Secured routes — require user context from the gateway
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Get("/user/badges", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		earned, err := badgeService.GetEarnedBadges(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to get badges",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"badges": earned})
	})

	secured.Get("/user/badges/progress", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		progress, err := badgeService.GetBadgeProgress(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to get badge progress",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"progress": progress})
	})

	// Manual re-check (e.g. after a backfill import); normally CheckBadges runs
	// off each logged show.
	secured.Post("/user/badges/check", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			EventID *string `json:"event_id,omitempty"`
		}
		_ = c.BodyParser(&req) // empty body is fine

		result, err := badgeService.CheckBadges(userID, services.CheckOptions{
			Award:   true,
			EventID: req.EventID,
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "badge check failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(result)
	})

	secured.Get("/user/stats", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		stats, err := badgeService.GetUserStats(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to compute stats",
				"cause": err.Error(),
			})
		}

		genres := make([]fiber.Map, 0, len(stats.GenreCounts))
		for bucket, count := range stats.GenreCounts {
			genres = append(genres, fiber.Map{
				"bucket":  bucket,
				"display": services.GenreDisplayName(bucket),
				"count":   count,
			})
		}

		return c.JSON(fiber.Map{
			"stats":  stats,
			"genres": genres,
		})
	})
}
