package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})

	api := app.Group("/api")
	authRoutes(api)
	attendanceRoutes(api)
	hrRoutes(api)
	employeeRoutes(api)
	leaveRoutes(api)
	salaryRoutes(api)
	announcementRoutes(api)
}
