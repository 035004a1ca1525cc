package controllers

import (
	"Agency-Backend/src/jobs"
	"Agency-Backend/src/models"
	"Agency-Backend/src/services/newsletter"
	"Agency-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// SubscribeNewsletter godoc
// @Summary      Subscribe to the newsletter
// @Description  Registers the email, pushes it to HubSpot best-effort and queues a welcome email. Re-subscribing is a no-op.
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body body models.NewsletterSubscribeRequest true "Signup"
// @Success      201  {object}  models.NewsletterSubscriber
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /newsletter/subscribe [post]
func SubscribeNewsletter(c *fiber.Ctx) error {
	var req models.NewsletterSubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "A valid email is required")
	}

	sub, created, err := newsletter.Subscribe(c.Context(), &req)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not subscribe", err)
	}

	if created {
		jobs.EnqueueWelcomeEmail(sub.Email, sub.UnsubscribeToken)
		return c.Status(fiber.StatusCreated).JSON(sub)
	}
	return c.JSON(sub)
}

// UnsubscribeNewsletter - deactivate a subscriber by token.
func UnsubscribeNewsletter(c *fiber.Ctx) error {
	if err := newsletter.Unsubscribe(c.Context(), c.Params("token")); err != nil {
		if err == newsletter.ErrTokenNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Unknown unsubscribe token")
		}
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not unsubscribe", err)
	}
	return c.JSON(fiber.Map{"message": "You have been unsubscribed"})
}
