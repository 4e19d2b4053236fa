package controllers

import (
	"Backend-Verdancy/src/models"
	"Backend-Verdancy/src/services/roster"
	"Backend-Verdancy/src/services/summary"
	"Backend-Verdancy/src/utils"
	"log"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetSummary godoc
// @Summary Members summary
// @Description All members with attendance history; table or card layout by viewport width
// @Tags summary
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search keyword (username/email)"
// @Param sortBy query string false "Sort by field"
// @Param order query string false "Order (asc/desc)"
// @Param width query int false "Viewport width in px (below 768 returns cards)"
// @Success 200 {object} models.PaginatedResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /summary [get]
func GetSummary(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)
	params.Normalize() // กัน limit=0 หรือค่าที่ parse ไม่ผ่าน
	width := c.QueryInt("width", 0)

	result, total, err := summary.GetSummary(params, width)
	if err != nil {
		log.Println("❌ Error building summary:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "ไม่สามารถดึงข้อมูลสรุปได้")
	}

	return c.JSON(models.NewPaginatedResponse(result, total, params))
}

// RefreshSummary godoc
// @Summary Refresh cached member data
// @Description Drops the roster cache so the next read hits the store
// @Tags summary
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /summary/refresh [post]
func RefreshSummary(c *fiber.Ctx) error {
	roster.Invalidate()
	return c.JSON(fiber.Map{"message": "Cache invalidated"})
}
