package controllers

import (
	"errors"

	"Backend-VentureHR/src/models"
	"Backend-VentureHR/src/services/employees"
	"Backend-VentureHR/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func employeeStatusCode(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, employees.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, employees.ErrDuplicateCode):
		return fiber.StatusConflict
	case errors.Is(err, employees.ErrUserNotFound), errors.As(err, &verr):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// GetAllEmployees - HR ดูพนักงานทั้งหมด
func GetAllEmployees(c *fiber.Ctx) error {
	result, err := employees.GetAll()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching employees")
	}
	return c.JSON(result)
}

// AddEmployee godoc
// @Summary      Add a new employee
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        body body models.Employee true "Employee"
// @Success      201  {object}  models.Employee
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /hr/employees [post]
func AddEmployee(c *fiber.Ctx) error {
	var emp models.Employee
	if err := c.BodyParser(&emp); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := employees.Create(&emp); err != nil {
		return utils.HandleError(c, employeeStatusCode(err), err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Employee created successfully",
		"data":    emp,
	})
}

// UpdateEmployee - HR แก้ไขข้อมูลพนักงาน
func UpdateEmployee(c *fiber.Ctx) error {
	var emp models.Employee
	if err := c.BodyParser(&emp); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := employees.Update(c.Params("id"), &emp)
	if err != nil {
		return utils.HandleError(c, employeeStatusCode(err), err.Error())
	}
	return c.JSON(updated)
}

// DeleteEmployee - HR ลบพนักงาน
func DeleteEmployee(c *fiber.Ctx) error {
	if err := employees.Delete(c.Params("id")); err != nil {
		return utils.HandleError(c, employeeStatusCode(err), err.Error())
	}
	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}
