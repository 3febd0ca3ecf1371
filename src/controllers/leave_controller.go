package controllers

import (
	"errors"

	"Backend-VentureHR/src/models"
	"Backend-VentureHR/src/services/employees"
	"Backend-VentureHR/src/services/leaves"
	"Backend-VentureHR/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func leaveStatusCode(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, leaves.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, leaves.ErrNotOwner):
		return fiber.StatusForbidden
	case errors.Is(err, leaves.ErrNotPending),
		errors.Is(err, leaves.ErrTooManyDays),
		errors.Is(err, leaves.ErrInvalidPeriod),
		errors.As(err, &verr):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ApplyLeave godoc
// @Summary      Apply for leave
// @Description  At most 3 days per request. Created with status PENDING.
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        body body models.LeaveRequest true "Leave request"
// @Success      201  {object}  models.LeaveRequest
// @Failure      400  {object}  models.ErrorResponse
// @Router       /leave/apply [post]
func ApplyLeave(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	emp, err := employees.GetByEmail(email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Employee profile not found")
	}

	var req models.LeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := leaves.Apply(emp, &req); err != nil {
		return utils.HandleError(c, leaveStatusCode(err), err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

// MyLeaves - ดูคำขอลาของตัวเอง
func MyLeaves(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	emp, err := employees.GetByEmail(email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Employee profile not found")
	}

	result, err := leaves.MyLeaves(emp.ID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// EditLeave - แก้ไขคำขอของตัวเอง (เฉพาะ PENDING)
func EditLeave(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	emp, err := employees.GetByEmail(email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Employee profile not found")
	}

	var req models.LeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	leave, err := leaves.Edit(c.Params("id"), emp.ID, &req)
	if err != nil {
		return utils.HandleError(c, leaveStatusCode(err), err.Error())
	}
	return c.JSON(leave)
}

// DeleteLeave - ลบคำขอของตัวเอง (เฉพาะ PENDING)
func DeleteLeave(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	emp, err := employees.GetByEmail(email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Employee profile not found")
	}

	if err := leaves.Delete(c.Params("id"), emp.ID); err != nil {
		return utils.HandleError(c, leaveStatusCode(err), err.Error())
	}
	return c.JSON(fiber.Map{"message": "Leave deleted successfully"})
}

// AllLeaves - HR ดูคำขอลาทั้งหมด
func AllLeaves(c *fiber.Ctx) error {
	result, err := leaves.All()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// UpdateLeaveStatus - HR อนุมัติหรือปฏิเสธคำขอลา
func UpdateLeaveStatus(c *fiber.Ctx) error {
	hrEmail := c.Locals("email").(string)

	var body struct {
		Status models.LeaveStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	leave, err := leaves.UpdateStatus(c.Params("id"), body.Status, hrEmail)
	if err != nil {
		return utils.HandleError(c, leaveStatusCode(err), err.Error())
	}
	return c.JSON(leave)
}
