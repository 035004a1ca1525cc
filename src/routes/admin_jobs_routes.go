package routes

import (
	"Agency-Backend/src/controllers"
	"Agency-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func adminJobRoutes(app *fiber.App) {
	admin := app.Group("/admin/jobs", middleware.AuthJWT)
	admin.Post("/lead-cleanup", controllers.EnqueueLeadCleanup)
}
