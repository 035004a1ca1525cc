package controllers

import (
	"Agency-Backend/src/models"
	"Agency-Backend/src/services/pages"
	"Agency-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreatePage - store a new CMS page document.
func CreatePage(c *fiber.Ctx) error {
	var page models.Page
	if err := c.BodyParser(&page); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(&page); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := pages.CreatePage(c.Context(), &page); err != nil {
		if err == pages.ErrSlugTaken {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not create page", err)
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

// GetPages - dashboard list of all CMS pages.
func GetPages(c *fiber.Ctx) error {
	result, err := pages.GetPages(c.Context())
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not fetch pages", err)
	}
	return c.JSON(result)
}

// GetPageBySlug - one published page for the public site.
func GetPageBySlug(c *fiber.Ctx) error {
	page, err := pages.GetPageBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Page not found")
	}
	return c.JSON(page)
}

// UpdatePage - replace a page's content.
func UpdatePage(c *fiber.Ctx) error {
	var page models.Page
	if err := c.BodyParser(&page); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := pages.UpdatePage(c.Context(), c.Params("id"), &page)
	if err != nil {
		switch err {
		case pages.ErrNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Page not found")
		case pages.ErrInvalidPageID:
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not update page", err)
	}
	return c.JSON(updated)
}

// DeletePage - remove a CMS page.
func DeletePage(c *fiber.Ctx) error {
	if err := pages.DeletePage(c.Context(), c.Params("id")); err != nil {
		switch err {
		case pages.ErrNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Page not found")
		case pages.ErrInvalidPageID:
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not delete page", err)
	}
	return c.JSON(fiber.Map{"message": "Page deleted successfully"})
}
