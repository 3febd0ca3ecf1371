package controllers

import (
	"errors"
	"time"

	"Backend-VentureHR/src/database"
	"Backend-VentureHR/src/jobs"
	"Backend-VentureHR/src/models"
	"Backend-VentureHR/src/services/attendance"
	"Backend-VentureHR/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// attendanceStatusCode แปลง error ของ attendance service เป็น HTTP status
func attendanceStatusCode(err error) int {
	switch {
	case errors.Is(err, attendance.ErrEmployeeNotFound),
		errors.Is(err, attendance.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut):
		return fiber.StatusConflict
	case errors.Is(err, attendance.ErrNoCheckInRecord),
		errors.Is(err, attendance.ErrInvalidTransition):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// CheckIn godoc
// @Summary      Employee check-in for today
// @Description  Creates today's attendance record with status PENDING. Rejects a second check-in on the same day.
// @Tags         attendance
// @Produce      json
// @Success      201  {object}  models.Attendance
// @Failure      409  {object}  models.ErrorResponse
// @Router       /attendance/checkin [post]
func CheckIn(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	rec, err := attendance.Default().CheckIn(c.Context(), email)
	if err != nil {
		return utils.HandleError(c, attendanceStatusCode(err), err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Checked in",
		"data":    rec,
	})
}

// CheckOut godoc
// @Summary      Employee check-out for today
// @Description  Stamps the checkout time and derives the final status for the day.
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  models.Attendance
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /attendance/checkout [post]
func CheckOut(c *fiber.Ctx) error {
	email := c.Locals("email").(string)

	rec, err := attendance.Default().CheckOut(c.Context(), email)
	if err != nil {
		return utils.HandleError(c, attendanceStatusCode(err), err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Checked out",
		"data":    rec,
	})
}

// GetMyAttendance - ประวัติการเข้างานทั้งหมดของตัวเอง
func GetMyAttendance(c *fiber.Ctx) error {
	code := c.Locals("employeeCode").(string)

	records, err := attendance.Default().ListForEmployee(c.Context(), code)
	if err != nil {
		return utils.HandleError(c, attendanceStatusCode(err), err.Error())
	}
	return c.JSON(records)
}

// GetMyAttendanceByMonth - ประวัติการเข้างานของตัวเองในเดือนที่เลือก
func GetMyAttendanceByMonth(c *fiber.Ctx) error {
	code := c.Locals("employeeCode").(string)
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return utils.HandleError(c, fiber.StatusBadRequest, "year and month query params are required")
	}

	records, err := attendance.Default().ListForEmployeeInMonth(c.Context(), code, year, month)
	if err != nil {
		return utils.HandleError(c, attendanceStatusCode(err), err.Error())
	}
	return c.JSON(records)
}

// GetMySummary godoc
// @Summary      Monthly attendance summary for the caller
// @Description  Counts per status in the month, weekends excluded, all five buckets always present.
// @Tags         attendance
// @Produce      json
// @Param        year   query  int  true  "Year"
// @Param        month  query  int  true  "Month (1-12)"
// @Success      200  {object}  models.MonthlySummary
// @Router       /attendance/my/summary [get]
func GetMySummary(c *fiber.Ctx) error {
	code := c.Locals("employeeCode").(string)
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return utils.HandleError(c, fiber.StatusBadRequest, "year and month query params are required")
	}

	summary, err := attendance.Default().MonthlySummary(c.Context(), code, year, month)
	if err != nil {
		return utils.HandleError(c, attendanceStatusCode(err), err.Error())
	}
	return c.JSON(summary)
}

// GetAllAttendance - HR ดูประวัติการเข้างานทั้งหมด
func GetAllAttendance(c *fiber.Ctx) error {
	records, err := attendance.Default().ListAll(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(records)
}

// GetAllAttendanceByMonth - HR ดูประวัติการเข้างานทั้งหมดในเดือนที่เลือก
func GetAllAttendanceByMonth(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return utils.HandleError(c, fiber.StatusBadRequest, "year and month query params are required")
	}

	records, err := attendance.Default().ListAllByMonth(c.Context(), year, month)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(records)
}

// GetSummaryForEmployee - HR ดูสรุปรายเดือนของพนักงานคนใดก็ได้
func GetSummaryForEmployee(c *fiber.Ctx) error {
	code := c.Params("code")
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return utils.HandleError(c, fiber.StatusBadRequest, "year and month query params are required")
	}

	summary, err := attendance.Default().MonthlySummary(c.Context(), code, year, month)
	if err != nil {
		return utils.HandleError(c, attendanceStatusCode(err), err.Error())
	}
	return c.JSON(summary)
}

// GetSummaryAll - HR ดูสรุปรายเดือนของพนักงานทุกคน
func GetSummaryAll(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return utils.HandleError(c, fiber.StatusBadRequest, "year and month query params are required")
	}

	summaries, err := attendance.Default().MonthlySummaryAll(c.Context(), year, month)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(summaries)
}

// EditAttendance godoc
// @Summary      HR correction of an attendance record
// @Description  Overwrites status, times and reason directly. No transition guard.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "Record ID"
// @Param        body body  models.AttendanceEdit true "New values"
// @Success      200  {object}  models.Attendance
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /attendance/{id}/edit [put]
func EditAttendance(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid record ID")
	}

	var edit models.AttendanceEdit
	if err := c.BodyParser(&edit); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rec, err := attendance.Default().Edit(c.Context(), id, edit)
	if err != nil {
		return utils.HandleError(c, attendanceStatusCode(err), err.Error())
	}
	return c.JSON(rec)
}

// EnqueueSweep godoc
// @Summary      Enqueue a reconciliation sweep for a date
// @Description  HR catch-up for a day the scheduled sweep missed. Empty date means today. The sweep itself is idempotent.
// @Tags         attendance
// @Produce      json
// @Param        date  query  string  false  "Date (YYYY-MM-DD)"
// @Success      202  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /attendance/sweep [post]
func EnqueueSweep(c *fiber.Ctx) error {
	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse(models.AttendanceDateLayout, date); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
	}

	if database.AsynqClient == nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, "Background jobs are disabled")
	}

	task, err := jobs.NewAttendanceSweepTask(date)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	info, err := database.AsynqClient.Enqueue(task)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Sweep enqueued",
		"taskId":  info.ID,
	})
}

// DeleteAttendance - HR ลบ record
func DeleteAttendance(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid record ID")
	}

	if err := attendance.Default().Delete(c.Context(), id); err != nil {
		return utils.HandleError(c, attendanceStatusCode(err), err.Error())
	}
	return c.JSON(fiber.Map{"message": "Attendance record deleted successfully"})
}
