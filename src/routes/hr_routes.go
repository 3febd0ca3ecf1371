package routes

import (
	"Backend-VentureHR/src/controllers"
	"Backend-VentureHR/src/middleware"
	"Backend-VentureHR/src/models"

	"github.com/gofiber/fiber/v2"
)

// hrRoutes จัดการพนักงาน เปิดเฉพาะ role HR
func hrRoutes(router fiber.Router) {
	hr := router.Group("/hr")
	hr.Use(middleware.AuthJWT, middleware.RequireRole(models.RoleHR))

	hr.Get("/employees", controllers.GetAllEmployees)
	hr.Post("/employees", controllers.AddEmployee)
	hr.Put("/employees/:id", controllers.UpdateEmployee)
	hr.Delete("/employees/:id", controllers.DeleteEmployee)
}
