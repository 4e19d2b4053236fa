package controllers

import (
	"Backend-Verdancy/src/services/checkins"
	"Backend-Verdancy/src/services/members"
	"Backend-Verdancy/src/services/roster"
	"Backend-Verdancy/src/utils"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetRoster godoc
// @Summary Check-in page roster
// @Description Members scheduled for today (or everyone with showAll), with per-member check-in state
// @Tags checkin
// @Produce json
// @Param showAll query bool false "Bypass the schedule filter"
// @Param search query string false "Ranked username search (exact matches first)"
// @Success 200 {array} roster.Entry
// @Failure 500 {object} models.ErrorResponse
// @Router /checkin/roster [get]
func GetRoster(c *fiber.Ctx) error {
	showAll := c.QueryBool("showAll", false)
	query := c.Query("search")

	entries, err := roster.Roster(showAll, query)
	if err != nil {
		log.Println("❌ Error building roster:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "ไม่สามารถดึงข้อมูล roster ได้")
	}
	return c.JSON(entries)
}

// Checkin godoc
// @Summary Check a member in for today
// @Description Optimistic pending mark, then the store increment; rolled back on failure.
// @Description A repeat on the same day is a benign no-op, not an error.
// @Tags checkin
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /checkin/{id} [post]
func Checkin(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := roster.BeginCheckin(id); err != nil {
		return utils.HandleError(c, http.StatusConflict, "การเช็คชื่อก่อนหน้ายังไม่เสร็จ")
	}

	member, err := checkins.IncrementPresent(id)
	switch {
	case err == checkins.ErrAlreadyCheckedIn:
		// เช็คซ้ำในวันเดียวกัน = no-op ไม่ใช่ความผิดพลาด
		roster.ConfirmCheckin(member)
		return c.JSON(fiber.Map{
			"message": "Member already checked in today",
			"present": member.Present,
		})
	case err == members.ErrMemberNotFound:
		roster.FailCheckin(id)
		return utils.HandleError(c, http.StatusNotFound, "ไม่พบสมาชิก")
	case err != nil:
		roster.FailCheckin(id)
		log.Println("❌ Check-in failed:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "เช็คชื่อไม่สำเร็จ")
	}

	roster.ConfirmCheckin(member)
	return c.JSON(fiber.Map{
		"message":         "Checked in",
		"present":         member.Present,
		"lastCheckinDate": member.LastCheckinDate(),
	})
}
