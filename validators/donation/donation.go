package donationValidator

import (
	"antuf/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ImpactItem struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

type UpdateDonationPageRequest struct {
	HeaderTitle string                 `json:"header_title"`
	HeaderText  string                 `json:"header_text"`
	ImpactItems []ImpactItem           `json:"impact_items"`
	BankDetails map[string]interface{} `json:"bank_details"`
	ContactInfo map[string]interface{} `json:"contact_info"`
}

// UpdatePage validates the wholesale replacement payload for the donation page
func UpdatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateDonationPageRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.HeaderTitle) == "" {
			errors["header_title"] = "Header title is required!"
		}
		for _, item := range reqData.ImpactItems {
			if item.Amount <= 0 {
				errors["impact_items"] = "Impact item amounts must be positive!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDonationPage", reqData)
		return c.Next()
	}
}
