package middleware

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "storefront_session"

// localsUser is the fiber.Ctx locals key holding the authenticated user.
const localsUser = "session_user"

// SessionRequired checks for a valid session cookie and stores the user in
// the request context. Missing or invalid sessions get the 401 envelope the
// client routes through its unauthorized callback.
func SessionRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "session required",
			})
		}

		user, err := authService.ValidateSession(token)
		if err != nil {
			log.Printf("session rejected: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "session expired",
			})
		}

		c.Locals(localsUser, user)
		return c.Next()
	}
}

// AdminOnly allows only users with the admin role past. It must run after
// SessionRequired.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := SessionUser(c)
		if user == nil || !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "admin access required",
			})
		}
		return c.Next()
	}
}

// SessionUser returns the authenticated user stored by SessionRequired, or
// nil on public routes.
func SessionUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localsUser).(*models.User)
	return user
}
