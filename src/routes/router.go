package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	contactRoutes(app)
	blogRoutes(app)
	caseRoutes(app)
	pageRoutes(app)
	newsletterRoutes(app)
	geoRoutes(app)
	authRoutes(app)
	userRoutes(app)
	adminJobRoutes(app)

	// health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})
}
