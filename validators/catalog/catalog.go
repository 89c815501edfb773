package catalogValidator

import (
	"antuf/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type NamedEntityRequest struct {
	Name string `json:"name"`
}

type SearchRequest struct {
	Page   *int    `query:"page"`
	Limit  *int    `query:"limit"`
	Search *string `query:"search"`
}

// NamedEntity validates the create/update payload shared by categories,
// courses and content entries. Empty and whitespace-only names are rejected.
func NamedEntity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(NamedEntityRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNamedEntity", reqData)
		return c.Next()
	}
}

func EntityID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entityID, err := c.ParamsInt("id")
		if err != nil || entityID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		c.Locals("entityID", entityID)
		return c.Next()
	}
}

func UpdateNamedEntity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entityID, err := c.ParamsInt("id")
		if err != nil || entityID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id!", nil)
		}
		c.Locals("entityID", entityID)

		reqData := new(NamedEntityRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
		}

		c.Locals("validatedNamedEntity", reqData)
		return c.Next()
	}
}

func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SearchRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedSearch", reqData)
		return c.Next()
	}
}
