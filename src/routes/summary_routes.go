package routes

import (
	"Backend-Verdancy/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// summaryRoutes กำหนดเส้นทางสำหรับหน้าสรุป
func summaryRoutes(router fiber.Router) {
	summaryGroup := router.Group("/summary")
	summaryGroup.Get("/", controllers.GetSummary)
	summaryGroup.Post("/refresh", controllers.RefreshSummary)
}
