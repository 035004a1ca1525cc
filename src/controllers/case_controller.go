package controllers

import (
	"Agency-Backend/src/models"
	"Agency-Backend/src/services/cases"
	"Agency-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateCaseStudy - store a new client-work entry.
func CreateCaseStudy(c *fiber.Ctx) error {
	var cs models.CaseStudy
	if err := c.BodyParser(&cs); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(&cs); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := cases.CreateCaseStudy(c.Context(), &cs); err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not create case study", err)
	}
	return c.Status(fiber.StatusCreated).JSON(cs)
}

// GetCaseStudies - public list of published case studies; pass
// featured=true for the homepage highlights.
func GetCaseStudies(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	params.Normalize()

	featured := c.QueryBool("featured", false)
	result, err := cases.GetCaseStudies(c.Context(), params, true, featured)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not fetch case studies", err)
	}
	return c.JSON(result)
}

// GetAllCaseStudies - dashboard list including drafts.
func GetAllCaseStudies(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	params.Normalize()

	result, err := cases.GetCaseStudies(c.Context(), params, false, false)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not fetch case studies", err)
	}
	return c.JSON(result)
}

// GetCaseStudyBySlug - one published case study.
func GetCaseStudyBySlug(c *fiber.Ctx) error {
	cs, err := cases.GetCaseStudyBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Case study not found")
	}
	return c.JSON(cs)
}

// UpdateCaseStudy - replace an entry's content.
func UpdateCaseStudy(c *fiber.Ctx) error {
	var cs models.CaseStudy
	if err := c.BodyParser(&cs); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := cases.UpdateCaseStudy(c.Context(), c.Params("id"), &cs)
	if err != nil {
		if err == cases.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Case study not found")
		}
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not update case study", err)
	}
	return c.JSON(updated)
}

// DeleteCaseStudy - remove an entry.
func DeleteCaseStudy(c *fiber.Ctx) error {
	if err := cases.DeleteCaseStudy(c.Context(), c.Params("id")); err != nil {
		if err == cases.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Case study not found")
		}
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not delete case study", err)
	}
	return c.JSON(fiber.Map{"message": "Case study deleted successfully"})
}
