package chatValidator

import (
	"antuf/middleware"
	"antuf/models/chat"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CreateRoomRequest struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type UpdateRoomRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

type AssignRoomRequest struct {
	AdminID uint `json:"admin_id"`
}

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRoomRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Subject) == "" {
			errors["subject"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if reqData.Priority == "" {
			reqData.Priority = chat.PriorityMedium
		} else if !chat.IsValidPriority(strings.ToUpper(reqData.Priority)) {
			errors["priority"] = "Priority must be LOW, MEDIUM, HIGH or URGENT!"
		} else {
			reqData.Priority = strings.ToUpper(reqData.Priority)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRoom", reqData)
		return c.Next()
	}
}

func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseRoomID(c); err != nil {
			return err
		}

		reqData := new(SendMessageRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Content) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"content": "Message content is required!"})
		}

		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}

func UpdateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseRoomID(c); err != nil {
			return err
		}

		reqData := new(UpdateRoomRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != nil {
			upper := strings.ToUpper(*reqData.Status)
			if !chat.IsValidRoomStatus(upper) {
				errors["status"] = "Status must be ACTIVE, CLOSED or ARCHIVED!"
			} else {
				reqData.Status = &upper
			}
		}
		if reqData.Priority != nil {
			upper := strings.ToUpper(*reqData.Priority)
			if !chat.IsValidPriority(upper) {
				errors["priority"] = "Priority must be LOW, MEDIUM, HIGH or URGENT!"
			} else {
				reqData.Priority = &upper
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRoomUpdate", reqData)
		return c.Next()
	}
}

func AssignRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseRoomID(c); err != nil {
			return err
		}

		reqData := new(AssignRoomRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.AdminID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"admin_id": "Admin id is required!"})
		}

		c.Locals("validatedAssign", reqData)
		return c.Next()
	}
}

func RoomID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseRoomID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

func parseRoomID(c *fiber.Ctx) error {
	roomID, err := c.ParamsInt("id")
	if err != nil || roomID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chat room id!", nil)
	}
	c.Locals("roomID", roomID)
	return nil
}
