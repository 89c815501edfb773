package cardValidator

import (
	"antuf/middleware"
	"antuf/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CreateCardOrderRequest struct {
	UserID   *uint  `json:"user_id"` // admins may order on behalf of a member
	Quantity int    `json:"quantity"`
	CardType string `json:"card_type"`
}

type CreateBulkCardOrderRequest struct {
	BatchName string `json:"batch_name"`
	UserIDs   []uint `json:"user_ids"`
	CardType  string `json:"card_type"`
	Notes     string `json:"notes"`
}

type UpdateCardStatusRequest struct {
	Status          string `json:"status"`
	ProcessingNotes string `json:"processing_notes"`
	TrackingNumber  string `json:"tracking_number"`
}

type ListCardOrdersRequest struct {
	Page     *int    `query:"page"`
	Limit    *int    `query:"limit"`
	Status   *string `query:"status"`
	CardType *string `query:"card_type"`
	BatchID  *string `query:"batch_id"`
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCardOrderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Quantity < 1 || reqData.Quantity > 100 {
			errors["quantity"] = "Quantity must be between 1 and 100!"
		}

		if reqData.CardType == "" {
			reqData.CardType = models.CardStandard
		} else if !models.IsValidCardType(strings.ToUpper(reqData.CardType)) {
			errors["card_type"] = "Card type must be STANDARD, PREMIUM or DIGITAL!"
		} else {
			reqData.CardType = strings.ToUpper(reqData.CardType)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCardOrder", reqData)
		return c.Next()
	}
}

func CreateBulkOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBulkCardOrderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.BatchName) == "" {
			errors["batch_name"] = "Batch name is required!"
		}
		if len(reqData.UserIDs) == 0 {
			errors["user_ids"] = "At least one user is required!"
		}

		if reqData.CardType == "" {
			reqData.CardType = models.CardStandard
		} else if !models.IsValidCardType(strings.ToUpper(reqData.CardType)) {
			errors["card_type"] = "Card type must be STANDARD, PREMIUM or DIGITAL!"
		} else {
			reqData.CardType = strings.ToUpper(reqData.CardType)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBulkOrder", reqData)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		queueID, err := c.ParamsInt("id")
		if err != nil || queueID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid queue id!", nil)
		}
		c.Locals("queueID", queueID)

		reqData := new(UpdateCardStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))
		if !models.IsValidCardStatus(reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be PENDING, PROCESSING, PRINTED, SHIPPED, DELIVERED or CANCELLED!",
			})
		}

		c.Locals("validatedStatusUpdate", reqData)
		return c.Next()
	}
}

func QueueID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		queueID, err := c.ParamsInt("id")
		if err != nil || queueID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid queue id!", nil)
		}
		c.Locals("queueID", queueID)
		return c.Next()
	}
}

func ListOrders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListCardOrdersRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
