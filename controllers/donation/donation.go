package donationController

import (
	"antuf/database"
	"antuf/middleware"
	"antuf/models"
	donationValidator "antuf/validators/donation"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func toJSONColumn(value interface{}) datatypes.JSON {
	raw, err := json.Marshal(value)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

// GetDonationPage returns the single active donation page config
func GetDonationPage(c *fiber.Ctx) error {
	db := database.Database.Db

	var page models.DonationPage
	if err := db.Where("is_active = ?", true).Order("updated_at desc").First(&page).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Donation page is not configured yet!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch donation page!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation page fetched successfully!", page)
}

// UpdateDonationPage replaces the config wholesale, the way the admin form
// submits it. Creates the document on first save.
func UpdateDonationPage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDonationPage").(*donationValidator.UpdateDonationPageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var page models.DonationPage
	err := db.Where("is_active = ?", true).Order("updated_at desc").First(&page).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch donation page!", nil)
	}

	page.HeaderTitle = reqData.HeaderTitle
	page.HeaderText = reqData.HeaderText
	page.ImpactItems = toJSONColumn(reqData.ImpactItems)
	page.BankDetails = toJSONColumn(reqData.BankDetails)
	page.ContactInfo = toJSONColumn(reqData.ContactInfo)
	page.IsActive = true

	if err := db.Save(&page).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update donation page!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation page updated successfully!", page)
}
