package routes

import (
	"Agency-Backend/src/controllers"
	"Agency-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func userRoutes(app *fiber.App) {
	user := app.Group("/users", middleware.AuthJWT)
	user.Get("/", controllers.GetUsers)
	user.Post("/", controllers.CreateUser)
	user.Delete("/:id", controllers.DeleteUser)
}
