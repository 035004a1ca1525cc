package routes

import (
	"Agency-Backend/src/controllers"
	"Agency-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func pageRoutes(app *fiber.App) {
	page := app.Group("/pages")
	page.Get("/", middleware.AuthJWT, controllers.GetPages)
	page.Get("/:slug", controllers.GetPageBySlug)
	page.Post("/", middleware.AuthJWT, controllers.CreatePage)
	page.Put("/:id", middleware.AuthJWT, controllers.UpdatePage)
	page.Delete("/:id", middleware.AuthJWT, controllers.DeletePage)
}
