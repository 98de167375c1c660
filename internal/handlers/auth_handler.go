package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the session endpoints.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterPublicRoutes registers the routes reachable without a session.
func (h *AuthHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/auth/login", h.HandleLogin)
}

// RegisterSessionRoutes registers the routes that require a session.
func (h *AuthHandler) RegisterSessionRoutes(router fiber.Router) {
	router.Post("/auth/logout", h.HandleLogout)
	router.Get("/auth/me", h.HandleMe)
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates and sets the session cookie.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			messages := make(map[string]string)
			for _, e := range validationErrors {
				messages[e.Field()] = fmt.Sprintf("field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "validation failed",
				"errors":  messages,
			})
		}
		return respondError(c, fiber.StatusBadRequest, "validation failed")
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return respondError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		log.Printf("error during login for %s: %v", req.Email, err)
		return respondError(c, fiber.StatusInternalServerError, "could not log in")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.authService.SessionDuration()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return respondData(c, fiber.StatusOK, fiber.Map{"user": user})
}

// HandleLogout clears the session cookie.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return respondData(c, fiber.StatusOK, fiber.Map{"loggedOut": true})
}

// HandleMe returns the session's user.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	return respondData(c, fiber.StatusOK, fiber.Map{"user": user})
}
