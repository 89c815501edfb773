package integrationController

import (
	"antuf/config"
	"antuf/middleware"
	integrationValidator "antuf/validators/integration"
	"encoding/json"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// judge0Result is the subset of the submission response shown to the widget
type judge0Result struct {
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	CompileOutput string `json:"compile_output"`
	Time          string `json:"time"`
	Memory        int    `json:"memory"`
	Status        struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
}

// RunCode forwards a source submission to the judge API and relays the result.
// The widget waits synchronously, so the submission is created with wait=true.
func RunCode(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRunCode").(*integrationValidator.RunCodeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-RapidAPI-Key", config.AppConfig.Judge0ApiKey).
		SetBody(map[string]interface{}{
			"source_code": reqData.SourceCode,
			"language_id": reqData.LanguageID,
			"stdin":       reqData.Stdin,
		}).
		Post(config.AppConfig.Judge0ApiURL + "/submissions?base64_encoded=false&wait=true")
	if err != nil {
		log.Printf("Judge0 request failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Code execution service is unavailable!", nil)
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Judge0 returned %d: %s", resp.StatusCode(), resp.String())
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Code execution service rejected the submission!", nil)
	}

	var result judge0Result
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		log.Printf("Failed to parse Judge0 response: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Invalid response from code execution service!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Code executed successfully!", result)
}
