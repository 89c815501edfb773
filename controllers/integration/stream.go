package integrationController

import (
	"antuf/config"
	"antuf/middleware"
	"antuf/models"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// StreamToken issues the signed token the video-call SDK expects for the
// authenticated user
func StreamToken(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if config.AppConfig.StreamApiSecret == "" {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Video calling is not configured!", nil)
	}

	claims := jwt.MapClaims{
		"user_id": fmt.Sprintf("%d", user.ID),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(1 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.StreamApiSecret))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue call token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Call token issued successfully!", fiber.Map{
		"api_key": config.AppConfig.StreamApiKey,
		"token":   signed,
		"user_id": fmt.Sprintf("%d", user.ID),
	})
}
