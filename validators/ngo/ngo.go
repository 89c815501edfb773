package ngoValidator

import (
	"antuf/middleware"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type EventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ImageURL    string     `json:"image_url"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

type RepresentativeRequest struct {
	Name     string `json:"name"`
	Region   string `json:"region"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	PhotoURL string `json:"photo_url"`
}

type AffiliateRequest struct {
	Name       string `json:"name"`
	WebsiteURL string `json:"website_url"`
	LogoURL    string `json:"logo_url"`
}

func Event() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EventRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.StartsAt != nil && reqData.EndsAt != nil && reqData.EndsAt.Before(*reqData.StartsAt) {
			errors["ends_at"] = "Event cannot end before it starts!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEvent", reqData)
		return c.Next()
	}
}

func Representative() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RepresentativeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
		}

		c.Locals("validatedRepresentative", reqData)
		return c.Next()
	}
}

func Affiliate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AffiliateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"name": "Name is required!"})
		}

		c.Locals("validatedAffiliate", reqData)
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
