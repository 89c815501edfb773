package userControllers

import (
	"antuf/database"
	"antuf/middleware"
	"antuf/models"
	userValidator "antuf/validators/user"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile lets a member edit their own details
func UpdateProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Mobile != "" {
		user.Mobile = reqData.Mobile
	}
	if reqData.ProfileImage != "" {
		user.ProfileImage = reqData.ProfileImage
	}
	if reqData.Address != "" {
		user.Address = reqData.Address
	}
	if reqData.City != "" {
		user.City = reqData.City
	}
	if reqData.State != "" {
		user.State = reqData.State
	}
	if reqData.PinCode != "" {
		user.PinCode = reqData.PinCode
	}

	if err := database.Database.Db.Save(user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// AdminListMembers lists members with role/search filters
func AdminListMembers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)

	if role := c.Query("role"); role != "" {
		db = db.Where("role = ?", strings.ToUpper(role))
	}
	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}

	var total int64
	db.Count(&total)

	var members []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&members).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch members!", nil)
	}

	for i := range members {
		members[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Members fetched successfully!", fiber.Map{
		"members":    members,
		"pagination": middleware.Pagination(total, page, limit),
	})
}

// AdminUpdateMemberRole changes a member's role. Transient write failures are
// flagged retryable so the calling client can repeat the request.
func AdminUpdateMemberRole(c *fiber.Ctx) error {
	memberID := c.Locals("memberID").(int)

	reqData, ok := c.Locals("validatedRole").(*userValidator.UpdateRoleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var member models.User
	if err := db.Where("id = ? AND is_deleted = ?", memberID, false).First(&member).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Member not found!", nil)
	}

	member.Role = reqData.Role
	if err := db.Save(&member).Error; err != nil {
		log.Printf("Error updating member role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", fiber.Map{
			"retryable": true,
		})
	}

	member.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", member)
}
