package integrationController

import (
	"antuf/config"
	"antuf/middleware"
	"antuf/models"
	integrationValidator "antuf/validators/integration"
	"encoding/json"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateCheckout creates a payment session at the configured gateway and
// returns the redirect URL the frontend should send the donor to
func CreateCheckout(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCheckout").(*integrationValidator.CheckoutRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	receiptID := uuid.NewString()

	client := resty.New()
	resp, err := client.R().
		SetBasicAuth(config.AppConfig.CheckoutApiKey, "").
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   reqData.Amount,
			"currency": reqData.Currency,
			"receipt":  receiptID,
			"notes": map[string]string{
				"purpose": reqData.Purpose,
				"email":   user.Email,
			},
		}).
		Post(config.AppConfig.CheckoutApiURL + "/orders")
	if err != nil {
		log.Printf("Checkout request failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment gateway is unavailable!", nil)
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Checkout gateway returned %d: %s", resp.StatusCode(), resp.String())
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment gateway rejected the request!", nil)
	}

	var order struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		ShortURL string `json:"short_url"`
	}
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		log.Printf("Failed to parse checkout response: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Invalid response from payment gateway!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Checkout session created successfully!", fiber.Map{
		"order_id":     order.ID,
		"receipt_id":   receiptID,
		"amount":       order.Amount,
		"currency":     order.Currency,
		"redirect_url": order.ShortURL,
	})
}
