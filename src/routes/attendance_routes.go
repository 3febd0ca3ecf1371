package routes

import (
	"Backend-VentureHR/src/controllers"
	"Backend-VentureHR/src/middleware"
	"Backend-VentureHR/src/models"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes กำหนดเส้นทางสำหรับ Attendance API
func attendanceRoutes(router fiber.Router) {
	attendance := router.Group("/attendance")
	attendance.Use(middleware.AuthJWT)

	// EMPLOYEE
	attendance.Post("/checkin", controllers.CheckIn)
	attendance.Post("/checkout", controllers.CheckOut)
	attendance.Get("/my", controllers.GetMyAttendance)
	attendance.Get("/my/month", controllers.GetMyAttendanceByMonth)
	attendance.Get("/my/summary", controllers.GetMySummary)

	// HR only
	hr := middleware.RequireRole(models.RoleHR)
	attendance.Get("/all", hr, controllers.GetAllAttendance)
	attendance.Get("/all/month", hr, controllers.GetAllAttendanceByMonth)
	attendance.Get("/summary", hr, controllers.GetSummaryAll)
	attendance.Get("/summary/:code", hr, controllers.GetSummaryForEmployee)
	attendance.Put("/:id/edit", hr, controllers.EditAttendance)
	attendance.Delete("/:id", hr, controllers.DeleteAttendance)
	attendance.Post("/sweep", hr, controllers.EnqueueSweep)
}
