package routes

import (
	"Agency-Backend/src/controllers"
	"Agency-Backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/login", controllers.LoginUser)
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
}
