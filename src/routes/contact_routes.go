package routes

import (
	"Agency-Backend/src/controllers"
	"Agency-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// contactRoutes wires lead capture and lead-hygiene endpoints. Static
// paths are registered before /:id so Fiber matches them first.
func contactRoutes(app *fiber.App) {
	contact := app.Group("/contact")

	// public capture endpoints
	contact.Post("/", controllers.CreateContactSubmission)
	contact.Post("/partial", controllers.CreatePartialSubmission)

	// lead hygiene (dashboard)
	contact.Get("/cleanup-duplicates", middleware.AuthJWT, controllers.InspectCleanupDuplicates)
	contact.Post("/cleanup-duplicates", middleware.AuthJWT, controllers.RunCleanupDuplicates)
	contact.Post("/merge-duplicates", middleware.AuthJWT, controllers.RunMergeDuplicates)
	contact.Get("/merge-partials", middleware.AuthJWT, controllers.InspectMergePartials)
	contact.Post("/merge-partials", middleware.AuthJWT, controllers.RunMergePartials)
	contact.Post("/fix-status", middleware.AuthJWT, controllers.FixStatuses)
	contact.Post("/partial-hubspot", middleware.AuthJWT, controllers.SyncPartialToHubSpot)

	// lead management (dashboard)
	contact.Get("/", middleware.AuthJWT, controllers.GetSubmissions)
	contact.Get("/:id", middleware.AuthJWT, controllers.GetSubmissionByID)
	contact.Patch("/:id/status", middleware.AuthJWT, controllers.UpdateSubmissionStatus)
	contact.Delete("/:id", middleware.AuthJWT, controllers.DeleteSubmission)
}
