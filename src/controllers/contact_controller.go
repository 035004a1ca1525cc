package controllers

import (
	"errors"

	"Agency-Backend/src/models"
	"Agency-Backend/src/services/contacts"
	"Agency-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

func statusForContactErr(err error) int {
	switch {
	case errors.Is(err, contacts.ErrNoIdentity),
		errors.Is(err, contacts.ErrInvalidStatus):
		return fiber.StatusBadRequest
	case errors.Is(err, contacts.ErrNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// CreatePartialSubmission godoc
// @Summary      Upsert a partial lead capture
// @Description  Finds an existing partial record by exact email or phone and folds the supplied fields into it, or creates a new partial record.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body body models.PartialSubmissionRequest true "Captured fields"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /contact/partial [post]
func CreatePartialSubmission(c *fiber.Ctx) error {
	var req models.PartialSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	record, created, err := contacts.UpsertPartial(c.Context(), &req)
	if err != nil {
		return utils.HandleErrorWithDetails(c, statusForContactErr(err), "Could not save partial submission", err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(record)
}

// CreateContactSubmission godoc
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body body models.ContactSubmissionRequest true "Contact form fields"
// @Success      201  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /contact [post]
func CreateContactSubmission(c *fiber.Ctx) error {
	var req models.ContactSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	record, err := contacts.CreateSubmission(c.Context(), &req)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not save submission", err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetSubmissions - paged submission list for the dashboard.
func GetSubmissions(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	params.Normalize()

	status := models.Status(c.Query("status"))
	result, err := contacts.GetSubmissions(c.Context(), params, status)
	if err != nil {
		return utils.HandleErrorWithDetails(c, statusForContactErr(err), "Could not fetch submissions", err)
	}
	return c.JSON(result)
}

// GetSubmissionByID - one submission for the dashboard detail view.
func GetSubmissionByID(c *fiber.Ctx) error {
	record, err := contacts.GetSubmissionByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.HandleErrorWithDetails(c, statusForContactErr(err), "Submission not found", err)
	}
	return c.JSON(record)
}

// UpdateSubmissionStatus - move a submission through the workflow.
func UpdateSubmissionStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.Status `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	record, err := contacts.UpdateSubmissionStatus(c.Context(), c.Params("id"), body.Status)
	if err != nil {
		return utils.HandleErrorWithDetails(c, statusForContactErr(err), "Could not update status", err)
	}
	return c.JSON(record)
}

// DeleteSubmission - remove a submission permanently.
func DeleteSubmission(c *fiber.Ctx) error {
	if err := contacts.DeleteSubmission(c.Context(), c.Params("id")); err != nil {
		return utils.HandleErrorWithDetails(c, statusForContactErr(err), "Could not delete submission", err)
	}
	return c.JSON(fiber.Map{"message": "Submission deleted successfully"})
}

// InspectCleanupDuplicates godoc
// @Summary      Dry-run the email/phone duplicate cleanup
// @Tags         contact
// @Produce      json
// @Success      200  {object}  models.MergeReport
// @Failure      500  {object}  models.ErrorResponse
// @Router       /contact/cleanup-duplicates [get]
func InspectCleanupDuplicates(c *fiber.Ctx) error {
	report, err := contacts.CleanupDuplicates(c.Context(), true)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Cleanup inspection failed", err)
	}
	return c.JSON(report)
}

// RunCleanupDuplicates godoc
// @Summary      Merge partial records sharing an exact email, then an exact phone
// @Tags         contact
// @Produce      json
// @Success      200  {object}  models.MergeReport
// @Failure      500  {object}  models.ErrorResponse
// @Router       /contact/cleanup-duplicates [post]
func RunCleanupDuplicates(c *fiber.Ctx) error {
	report, err := contacts.CleanupDuplicates(c.Context(), false)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Cleanup failed", err)
	}
	return c.JSON(report)
}

// RunMergeDuplicates godoc
// @Summary      Merge partial records sharing the seed's email or phone
// @Tags         contact
// @Produce      json
// @Success      200  {object}  models.MergeReport
// @Failure      500  {object}  models.ErrorResponse
// @Router       /contact/merge-duplicates [post]
func RunMergeDuplicates(c *fiber.Ctx) error {
	report, err := contacts.MergeDuplicates(c.Context())
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Merge failed", err)
	}
	return c.JSON(report)
}

// InspectMergePartials - dry-run of the provenance-based merge.
func InspectMergePartials(c *fiber.Ctx) error {
	report, err := contacts.MergePartials(c.Context(), true)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Merge inspection failed", err)
	}
	return c.JSON(report)
}

// RunMergePartials - merge partial records sharing source+page+country.
func RunMergePartials(c *fiber.Ctx) error {
	report, err := contacts.MergePartials(c.Context(), false)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Merge failed", err)
	}
	return c.JSON(report)
}

// FixStatuses godoc
// @Summary      Coerce every out-of-enum workflow status to pending
// @Tags         contact
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Router       /contact/fix-status [post]
func FixStatuses(c *fiber.Ctx) error {
	repaired, err := contacts.FixStatuses(c.Context())
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Status repair failed", err)
	}
	return c.JSON(fiber.Map{"repaired": repaired})
}

// SyncPartialToHubSpot godoc
// @Summary      Push one partial lead to HubSpot
// @Description  Idempotent: a record already synced is returned unchanged. The record must carry an email or a phone.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body body models.HubSpotSyncRequest true "Submission id"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /contact/partial-hubspot [post]
func SyncPartialToHubSpot(c *fiber.Ctx) error {
	var body models.HubSpotSyncRequest
	if err := c.BodyParser(&body); err != nil || body.ID == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Submission id is required")
	}

	record, synced, err := contacts.SyncToHubSpot(c.Context(), body.ID)
	if err != nil {
		return utils.HandleErrorWithDetails(c, statusForContactErr(err), "HubSpot sync failed", err)
	}

	return c.JSON(fiber.Map{
		"synced":     synced,
		"submission": record,
	})
}
