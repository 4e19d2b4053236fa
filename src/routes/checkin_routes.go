package routes

import (
	"Backend-Verdancy/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// checkinRoutes กำหนดเส้นทางสำหรับหน้าเช็คชื่อ
func checkinRoutes(router fiber.Router) {
	checkinGroup := router.Group("/checkin")
	checkinGroup.Get("/roster", controllers.GetRoster) // รายชื่อของวันนี้ (หรือทั้งหมดเมื่อ showAll)
	checkinGroup.Post("/:id", controllers.Checkin)     // เช็คชื่อสมาชิกหนึ่งคน
}
