package routes

import (
	"Backend-Verdancy/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// memberRoutes กำหนดเส้นทางสำหรับ Member API
func memberRoutes(router fiber.Router) {
	memberGroup := router.Group("/members")
	memberGroup.Get("/", controllers.GetMembers)                         // ดึงสมาชิกทั้งหมด
	memberGroup.Post("/", controllers.CreateMember)                      // สร้างสมาชิกใหม่
	memberGroup.Get("/schedule/:day", controllers.GetMembersBySchedule)  // กรองตามวันในสัปดาห์
	memberGroup.Get("/:id", controllers.GetMemberByID)                   // ดึงข้อมูลสมาชิกตาม ID
	memberGroup.Put("/:id", controllers.UpdateMember)                    // อัปเดตข้อมูลสมาชิก
	memberGroup.Delete("/:id", controllers.DeleteMember)                 // ลบสมาชิก
}
