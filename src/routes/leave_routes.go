package routes

import (
	"Backend-VentureHR/src/controllers"
	"Backend-VentureHR/src/middleware"
	"Backend-VentureHR/src/models"

	"github.com/gofiber/fiber/v2"
)

func leaveRoutes(router fiber.Router) {
	leave := router.Group("/leave")
	leave.Use(middleware.AuthJWT)

	leave.Post("/apply", controllers.ApplyLeave)
	leave.Get("/my", controllers.MyLeaves)
	leave.Put("/:id/edit", controllers.EditLeave)
	leave.Delete("/:id", controllers.DeleteLeave)

	hr := middleware.RequireRole(models.RoleHR)
	leave.Get("/all", hr, controllers.AllLeaves)
	leave.Put("/:id/status", hr, controllers.UpdateLeaveStatus)
}
