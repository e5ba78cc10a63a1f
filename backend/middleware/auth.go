package middleware

import (
	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const userLocal = "currentUser"

// Authenticate reads the token header. No token means the request stays
// anonymous and later gates decide; a bad token fails right away.
func Authenticate(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(utils.TokenHeader)
		if tokenString == "" {
			return c.Next()
		}

		userID, err := utils.ParseJWTToken(tokenString, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Invalid token")
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return utils.Unauthorized(c, "Invalid token")
		}

		c.Locals(userLocal, &user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated caller, or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocal).(*models.User)
	return user
}

func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return utils.Unauthorized(c, "Login to access this resource")
		}
		return c.Next()
	}
}

func RequireTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.Unauthorized(c, "Login to access this resource")
		}
		if user.Role != models.RoleTeacher {
			return utils.Forbidden(c, user.Role+" is not allowed to access this resource")
		}
		return c.Next()
	}
}

func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.Unauthorized(c, "Login to access this resource")
		}
		if user.Role != models.RoleAdmin {
			return utils.Forbidden(c, "You are not admin")
		}
		return c.Next()
	}
}
