package controllers

import (
	"errors"

	"Backend-VentureHR/src/models"
	"Backend-VentureHR/src/services/announcements"
	"Backend-VentureHR/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateAnnouncement - HR สร้างประกาศ
func CreateAnnouncement(c *fiber.Ctx) error {
	hrEmail := c.Locals("email").(string)

	var a models.Announcement
	if err := c.BodyParser(&a); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := announcements.Create(&a, hrEmail); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(a)
}

// GetAllAnnouncements - ทุกคนดูประกาศได้ ใหม่สุดก่อน
func GetAllAnnouncements(c *fiber.Ctx) error {
	result, err := announcements.All()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// DeleteAnnouncement - HR ลบประกาศ
func DeleteAnnouncement(c *fiber.Ctx) error {
	if err := announcements.Delete(c.Params("id")); err != nil {
		if errors.Is(err, announcements.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Announcement deleted successfully"})
}
