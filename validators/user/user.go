package userValidator

import (
	"antuf/middleware"
	"antuf/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	ProfileImage string `json:"profile_image"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	PinCode      string `json:"pin_code"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		memberID, err := c.ParamsInt("id")
		if err != nil || memberID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid member id!", nil)
		}
		c.Locals("memberID", memberID)

		reqData := new(UpdateRoleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))
		if reqData.Role != models.RoleUser && reqData.Role != models.RoleAdmin {
			return middleware.ValidationErrorResponse(c, map[string]string{"role": "Role must be USER or ADMIN!"})
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}
