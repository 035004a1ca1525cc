package controllers

import (
	"time"

	DB "Agency-Backend/src/database"
	"Agency-Backend/src/jobs"
	"Agency-Backend/src/services/contacts"
	"Agency-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

// EnqueueLeadCleanup godoc
// @Summary      Queue a lead-hygiene batch job
// @Description  Enqueues the requested merge variant to run in the background after delaySec seconds. Requires Asynq (Redis) configured.
// @Tags         admin
// @Produce      json
// @Param        variant   query  string  false  "cleanup-duplicates | merge-duplicates | merge-partials"
// @Param        delaySec  query  int     false  "Delay before the job runs"
// @Success      202  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/jobs/lead-cleanup [post]
func EnqueueLeadCleanup(c *fiber.Ctx) error {
	if DB.AsynqClient == nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "Background jobs are not configured")
	}

	variant := c.Query("variant", contacts.VariantCleanup)
	delaySec := c.QueryInt("delaySec", 0)

	task, err := jobs.NewLeadCleanupTask(variant)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not build task", err)
	}

	info, err := DB.AsynqClient.Enqueue(task,
		asynq.ProcessIn(time.Duration(delaySec)*time.Second),
		asynq.TaskID("lead-cleanup-"+variant+"-"+time.Now().Format("20060102150405")))
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not enqueue task", err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"taskId":  info.ID,
		"queue":   info.Queue,
		"variant": variant,
	})
}
