package routes

import (
	"Agency-Backend/src/controllers"
	"Agency-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func blogRoutes(app *fiber.App) {
	blog := app.Group("/blog")
	blog.Get("/", controllers.GetBlogPosts)
	blog.Get("/all", middleware.AuthJWT, controllers.GetAllBlogPosts)
	blog.Get("/:slug", controllers.GetBlogPostBySlug)
	blog.Post("/", middleware.AuthJWT, controllers.CreateBlogPost)
	blog.Put("/:id", middleware.AuthJWT, controllers.UpdateBlogPost)
	blog.Delete("/:id", middleware.AuthJWT, controllers.DeleteBlogPost)
}
