package handlers

import (
	"errors"
	"fmt"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/httpx"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/service"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input service.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	input.Username = validation.NormalizeUsername(input.Username)
	if input.Username == "" || input.Password == "" {
		return httpx.BadRequest(c, "missing_credentials", "Username and password are required")
	}
	if !validation.ValidateUsername(input.Username) {
		return httpx.BadRequest(c, "invalid_username", "Username must be 3-32 characters (letters, digits, underscore)")
	}
	if !validation.ValidatePassword(input.Password) {
		return httpx.BadRequest(c, "weak_password",
			fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength()))
	}

	result, err := h.authService.Register(input)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return httpx.Conflict(c, "username_taken", "Username is already taken")
		}
		return httpx.Internal(c, "register_failed")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input service.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	input.Username = validation.NormalizeUsername(input.Username)
	if input.Username == "" || input.Password == "" {
		return httpx.BadRequest(c, "missing_credentials", "Username and password are required")
	}

	result, err := h.authService.Login(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return httpx.Unauthorized(c, "invalid_credentials", "Invalid username or password")
		}
		return httpx.Internal(c, "login_failed")
	}

	return c.JSON(result)
}

func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return httpx.NotFound(c, "user_not_found", "User not found")
		}
		return httpx.Internal(c, "fetch_user_failed")
	}

	return c.JSON(user.ToResponse())
}
