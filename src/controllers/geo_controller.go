package controllers

import (
	"Agency-Backend/src/services/geo"
	"Agency-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRegionalContact godoc
// @Summary      Resolve the regional office for the visitor
// @Description  Geolocates the client IP (or the ip query override) and returns the matching regional office contact, falling back to the default office.
// @Tags         geo
// @Produce      json
// @Param        ip   query  string  false  "IP override for testing"
// @Success      200  {object}  models.GeoContactResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /geo/contact [get]
func GetRegionalContact(c *fiber.Ctx) error {
	ip := c.Query("ip")
	if ip == "" {
		ip = c.IP()
	}

	result, err := geo.ContactForIP(c.Context(), ip)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not resolve regional contact", err)
	}
	return c.JSON(result)
}
