package controllers

import (
	"errors"

	"Backend-VentureHR/src/models"
	"Backend-VentureHR/src/services/salaries"
	"Backend-VentureHR/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func salaryStatusCode(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, salaries.ErrNotFound),
		errors.Is(err, salaries.ErrEmployeeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, salaries.ErrAlreadyGenerated):
		return fiber.StatusConflict
	case errors.As(err, &verr):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// GenerateSalary - HR สร้างสลิปเงินเดือนประจำเดือน
func GenerateSalary(c *fiber.Ctx) error {
	var salary models.Salary
	if err := c.BodyParser(&salary); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := salaries.Generate(&salary); err != nil {
		return utils.HandleError(c, salaryStatusCode(err), err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(salary)
}

// ApplyHike - HR ปรับฐานเงินเดือนด้วยสลิปใหม่
func ApplyHike(c *fiber.Ctx) error {
	var salary models.Salary
	if err := c.BodyParser(&salary); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := salaries.ApplyHike(&salary); err != nil {
		return utils.HandleError(c, salaryStatusCode(err), err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(salary)
}

// MarkSalaryPaid - HR ยืนยันการจ่าย
func MarkSalaryPaid(c *fiber.Ctx) error {
	salary, err := salaries.MarkPaid(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, salaryStatusCode(err), err.Error())
	}
	return c.JSON(salary)
}

// MySalaries - พนักงานดูสลิปของตัวเอง
func MySalaries(c *fiber.Ctx) error {
	code := c.Locals("employeeCode").(string)

	result, err := salaries.MySalaries(code)
	if err != nil {
		return utils.HandleError(c, salaryStatusCode(err), err.Error())
	}
	return c.JSON(result)
}

// AllSalariesByMonth - HR ดูสลิปทุกคนในเดือนที่เลือก
func AllSalariesByMonth(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return utils.HandleError(c, fiber.StatusBadRequest, "year and month query params are required")
	}

	result, err := salaries.AllByMonth(year, month)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}
