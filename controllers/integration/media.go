package integrationController

import (
	"antuf/config"
	"antuf/middleware"
	"antuf/utils"
	"encoding/json"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// UploadImage forwards a multipart image to the CDN. If the CDN is down the
// file is kept on local disk and served from /uploads instead.
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	src, err := file.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
	}
	defer src.Close()

	client := resty.New()
	resp, err := client.R().
		SetFileReader("file", file.Filename, src).
		SetFormData(map[string]string{
			"upload_preset": config.AppConfig.CdnUploadPreset,
		}).
		Post(config.AppConfig.CdnUploadURL)

	if err == nil && resp.StatusCode() < 400 {
		var uploaded struct {
			SecureURL string `json:"secure_url"`
			PublicID  string `json:"public_id"`
		}
		if err := json.Unmarshal(resp.Body(), &uploaded); err == nil && uploaded.SecureURL != "" {
			return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image uploaded successfully!", fiber.Map{
				"url":       uploaded.SecureURL,
				"public_id": uploaded.PublicID,
			})
		}
	}

	if err != nil {
		log.Printf("CDN upload failed: %v", err)
	} else {
		log.Printf("CDN upload returned %d: %s", resp.StatusCode(), resp.String())
	}

	// Fall back to local storage
	savedPath, saveErr := utils.SaveUploadedFile(file, "./public/uploads")
	if saveErr != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image stored locally (CDN unavailable).", fiber.Map{
		"url": utils.GetFileURL(savedPath),
	})
}
