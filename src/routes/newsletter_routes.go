package routes

import (
	"Agency-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func newsletterRoutes(app *fiber.App) {
	newsletter := app.Group("/newsletter")
	newsletter.Post("/subscribe", controllers.SubscribeNewsletter)
	newsletter.Get("/unsubscribe/:token", controllers.UnsubscribeNewsletter)
}
