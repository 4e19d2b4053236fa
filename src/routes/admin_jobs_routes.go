package routes

import (
	"Backend-Verdancy/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func adminJobRoutes(router fiber.Router) {
	jobRoutes := router.Group("/admin/jobs")
	jobRoutes.Post("/monthly-reset", controllers.TriggerMonthlyReset) // สั่งล้างยอดรายเดือนเอง
}
