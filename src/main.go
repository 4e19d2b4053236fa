package main

import (
	_ "Backend-Verdancy/docs"
	DB "Backend-Verdancy/src/database"
	"Backend-Verdancy/src/jobs"
	"Backend-Verdancy/src/routes"
	"Backend-Verdancy/src/services"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title Verdancy Attendance API
// @version 1.0
// @description Attendance check-in backend for the Verdancy member roster
// @BasePath /api/v1
func main() {

	// เชื่อมต่อ MongoDB + Redis และผูก collection
	services.Init()

	// สร้าง app instance
	app := fiber.New()

	// ✅ เปิดใช้งาน CORS Middleware
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// worker สำหรับ job ล้างยอดรายเดือน (รันเมื่อมี Redis เท่านั้น)
	if DB.RedisURI != "" {
		go jobs.StartWorker()
	}

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
		log.Fatal(err)
	}
}
