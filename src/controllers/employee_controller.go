package controllers

import (
	"Backend-VentureHR/src/services/employees"
	"Backend-VentureHR/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetProfile - ดูโปรไฟล์ของตัวเอง
func GetProfile(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	emp, err := employees.GetByEmail(email)
	if err != nil {
		return utils.HandleError(c, employeeStatusCode(err), "Profile not found")
	}
	return c.JSON(emp)
}

// UpdateProfile - แก้ไขโปรไฟล์ของตัวเอง (เฉพาะ field ที่อนุญาต)
func UpdateProfile(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	var body struct {
		Department string `json:"department"`
		DeptRole   string `json:"deptRole"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	emp, err := employees.UpdateProfile(email, body.Department, body.DeptRole)
	if err != nil {
		return utils.HandleError(c, employeeStatusCode(err), err.Error())
	}
	return c.JSON(emp)
}
