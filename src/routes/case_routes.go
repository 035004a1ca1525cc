package routes

import (
	"Agency-Backend/src/controllers"
	"Agency-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func caseRoutes(app *fiber.App) {
	caseGroup := app.Group("/cases")
	caseGroup.Get("/", controllers.GetCaseStudies)
	caseGroup.Get("/all", middleware.AuthJWT, controllers.GetAllCaseStudies)
	caseGroup.Get("/:slug", controllers.GetCaseStudyBySlug)
	caseGroup.Post("/", middleware.AuthJWT, controllers.CreateCaseStudy)
	caseGroup.Put("/:id", middleware.AuthJWT, controllers.UpdateCaseStudy)
	caseGroup.Delete("/:id", middleware.AuthJWT, controllers.DeleteCaseStudy)
}
