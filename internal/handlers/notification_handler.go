package handlers

import (
	"errors"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/httpx"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/service"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	list, err := h.notificationService.List(userID)
	if err != nil {
		return httpx.Internal(c, "fetch_notifications_failed")
	}

	return c.JSON(list)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	notificationID, err := c.ParamsInt("notificationId")
	if err != nil || notificationID < 1 {
		return httpx.BadRequest(c, "invalid_notification_id", "Invalid notification id")
	}

	if err := h.notificationService.MarkRead(uint(notificationID), userID); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			return httpx.NotFound(c, "notification_not_found", "Notification not found")
		}
		if errors.Is(err, service.ErrNotNotificationOwner) {
			return httpx.Forbidden(c, "not_notification_owner", "You can only update your own notifications")
		}
		return httpx.Internal(c, "mark_read_failed")
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		return httpx.Internal(c, "mark_all_read_failed")
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
