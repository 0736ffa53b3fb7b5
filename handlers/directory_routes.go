// handlers/directory_routes.go
package handlers

import (
	"time"

	"concert-log-system/middleware"
	"concert-log-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDirectoryRoutes(app *fiber.App, artistService *services.ArtistService, venueService *services.VenueService, eventService *services.EventService) {
	// 🔓 Public reads
	app.Get("/artists", func(c *fiber.Ctx) error {
		artists, err := artistService.SearchArtists(c.Query("q", ""), c.QueryInt("limit", 50))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "artist search failed", "cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"artists": artists})
	})

	app.Get("/artists/:slug", func(c *fiber.Ctx) error {
		artist, err := artistService.GetArtistBySlug(c.Params("slug"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "artist not found"})
		}
		return c.JSON(artist)
	})

	app.Get("/venues", func(c *fiber.Ctx) error {
		venues, err := venueService.SearchVenues(c.Query("q", ""), c.QueryInt("limit", 50))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "venue search failed", "cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"venues": venues})
	})

	app.Get("/venues/:slug", func(c *fiber.Ctx) error {
		venue, err := venueService.GetVenueBySlug(c.Params("slug"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "venue not found"})
		}
		return c.JSON(venue)
	})

	app.Get("/events", func(c *fiber.Ctx) error {
		events, err := eventService.ListEvents(c.Query("artist_id"), c.Query("venue_id"), c.QueryInt("limit", 50))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "event listing failed", "cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"events": events})
	})

	app.Get("/events/:id", func(c *fiber.Ctx) error {
		event, err := eventService.GetEvent(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		return c.JSON(event)
	})

	// 🔐 Secured writes — any signed-in user can grow the directory
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Post("/artists", func(c *fiber.Ctx) error {
		var req struct {
			Name   string   `json:"name"`
			Genres []string `json:"genres"`
			Bio    string   `json:"bio"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		artist, err := artistService.CreateArtist(req.Name, req.Genres, req.Bio)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to create artist", "cause": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(artist)
	})

	secured.Post("/venues", func(c *fiber.Ctx) error {
		var req struct {
			Name     string `json:"name"`
			City     string `json:"city"`
			State    string `json:"state"`
			Country  string `json:"country"`
			Capacity int    `json:"capacity"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		venue, err := venueService.CreateVenue(req.Name, req.City, req.State, req.Country, req.Capacity)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to create venue", "cause": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(venue)
	})

	secured.Post("/events", func(c *fiber.Ctx) error {
		var req struct {
			Name     string    `json:"name"`
			ArtistID string    `json:"artist_id"`
			VenueID  string    `json:"venue_id"`
			Date     time.Time `json:"date"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		event, err := eventService.CreateEvent(req.Name, req.ArtistID, req.VenueID, req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to create event", "cause": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(event)
	})

	// Admin image uploads → R2
	admin := app.Group("/admin", middleware.UserContextMiddleware(), middleware.RequireRole("admin"))

	admin.Post("/artists/:id/image", func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
		}
		url, err := artistService.SetArtistImage(c.Params("id"), file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "image upload failed", "cause": err.Error()})
		}
		return c.JSON(fiber.Map{"image_url": url})
	})

	admin.Post("/venues/:id/image", func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
		}
		url, err := venueService.SetVenueImage(c.Params("id"), file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "image upload failed", "cause": err.Error()})
		}
		return c.JSON(fiber.Map{"image_url": url})
	})
}
