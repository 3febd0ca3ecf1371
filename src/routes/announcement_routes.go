package routes

import (
	"Backend-VentureHR/src/controllers"
	"Backend-VentureHR/src/middleware"
	"Backend-VentureHR/src/models"

	"github.com/gofiber/fiber/v2"
)

func announcementRoutes(router fiber.Router) {
	announcements := router.Group("/announcements")
	announcements.Use(middleware.AuthJWT)

	announcements.Get("/all", controllers.GetAllAnnouncements)

	hr := middleware.RequireRole(models.RoleHR)
	announcements.Post("/create", hr, controllers.CreateAnnouncement)
	announcements.Delete("/:id", hr, controllers.DeleteAnnouncement)
}
