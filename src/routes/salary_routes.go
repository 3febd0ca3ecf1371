package routes

import (
	"Backend-VentureHR/src/controllers"
	"Backend-VentureHR/src/middleware"
	"Backend-VentureHR/src/models"

	"github.com/gofiber/fiber/v2"
)

func salaryRoutes(router fiber.Router) {
	salary := router.Group("/salary")
	salary.Use(middleware.AuthJWT)

	salary.Get("/my", controllers.MySalaries)

	hr := middleware.RequireRole(models.RoleHR)
	salary.Post("/generate", hr, controllers.GenerateSalary)
	salary.Post("/hike", hr, controllers.ApplyHike)
	salary.Put("/:id/pay", hr, controllers.MarkSalaryPaid)
	salary.Get("/all/month", hr, controllers.AllSalariesByMonth)
}
