package routes

import (
	"Backend-VentureHR/src/controllers"
	"Backend-VentureHR/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func employeeRoutes(router fiber.Router) {
	employee := router.Group("/employee")
	employee.Use(middleware.AuthJWT)

	employee.Get("/profile", controllers.GetProfile)
	employee.Put("/profile", controllers.UpdateProfile)
}
