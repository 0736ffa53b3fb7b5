// handlers/show_routes.go
package handlers

import (
	"errors"
	"strconv"

	"concert-log-system/middleware"
	"concert-log-system/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupShowRoutes(app *fiber.App, logService *services.EventLogService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	// Log a show. Response carries any badges the log unlocked so the client
	// can show them immediately.
	secured.Post("/user/shows", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			EventID string `json:"event_id"`
			Notes   string `json:"notes"`
			Rating  *int   `json:"rating,omitempty"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.EventID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "event_id is required",
			})
		}

		entry, newBadges, err := logService.LogEvent(userID, req.EventID, req.Notes, req.Rating)
		if err != nil {
			if errors.Is(err, services.ErrAlreadyLogged) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "show already logged",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to log show",
				"cause": err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"log":        entry,
			"new_badges": newBadges,
		})
	})

	secured.Get("/user/shows", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		page, _ := strconv.Atoi(c.Query("page", "1"))
		size, _ := strconv.Atoi(c.Query("size", "20"))
		history, err := logService.GetUserHistory(userID, page, size)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to get show history",
				"cause": err.Error(),
			})
		}
		return c.JSON(history)
	})

	secured.Get("/user/shows/recent", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		days, _ := strconv.Atoi(c.Query("days", "30"))
		logs, err := logService.GetRecentLogs(userID, days)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to get recent shows",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"logs": logs})
	})

	secured.Delete("/user/shows/:id", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		if err := logService.DeleteLog(userID, c.Params("id")); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "show log not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to delete show log",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"message": "show log deleted"})
	})
}
