package routes

import (
	"Agency-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func geoRoutes(app *fiber.App) {
	geo := app.Group("/geo")
	geo.Get("/contact", controllers.GetRegionalContact)
}
