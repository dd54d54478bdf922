package handlers

import (
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/service"
	"github.com/gofiber/fiber/v2"
)

type VersionHandler struct {
	versionService *service.VersionService
}

func NewVersionHandler(versionService *service.VersionService) *VersionHandler {
	return &VersionHandler{versionService: versionService}
}

// GetVersion returns the current app version
// Public endpoint - no authentication required
// GET /api/version
func (h *VersionHandler) GetVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": h.versionService.GetVersion(),
	})
}
