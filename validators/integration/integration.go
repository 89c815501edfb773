package integrationValidator

import (
	"antuf/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type RunCodeRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type CheckoutRequest struct {
	Amount   int64  `json:"amount"` // smallest currency unit
	Currency string `json:"currency"`
	Purpose  string `json:"purpose"` // DONATION or MEMBERSHIP
}

func RunCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RunCodeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.SourceCode) == "" {
			errors["source_code"] = "Source code is required!"
		}
		if reqData.LanguageID < 1 {
			errors["language_id"] = "Language id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRunCode", reqData)
		return c.Next()
	}
}

func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CheckoutRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount < 1 {
			errors["amount"] = "Amount must be positive!"
		}
		if reqData.Currency == "" {
			reqData.Currency = "INR"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}
