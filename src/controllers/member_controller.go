package controllers

import (
	"Backend-Verdancy/src/models"
	"Backend-Verdancy/src/services/members"
	"Backend-Verdancy/src/services/roster"
	"Backend-Verdancy/src/utils"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// readUploadedFile อ่าน bytes ของไฟล์รูปจาก multipart form (nil ถ้าไม่ได้ส่งมา)
func readUploadedFile(c *fiber.Ctx) ([]byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, nil // ไม่มีไฟล์ ไม่ใช่ error
	}

	var f multipart.File
	f, err = fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// parseSchedule รับได้ทั้ง field ซ้ำหลายตัวและ comma-separated
func parseSchedule(values []string) []string {
	var out []string
	for _, v := range values {
		for _, day := range strings.Split(v, ",") {
			day = strings.TrimSpace(day)
			if day != "" {
				out = append(out, day)
			}
		}
	}
	return out
}

// GetMembers godoc
// @Summary Get members
// @Description Get all members with derived lastCheckinDate
// @Tags members
// @Produce json
// @Success 200 {array} models.MemberResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /members [get]
func GetMembers(c *fiber.Ctx) error {
	all, err := members.GetAllMembers()
	if err != nil {
		log.Println("❌ Error fetching members:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "ไม่สามารถดึงข้อมูลสมาชิกได้")
	}

	out := make([]models.MemberResponse, 0, len(all))
	for _, m := range all {
		out = append(out, models.NewMemberResponse(m))
	}
	return c.JSON(out)
}

// GetMemberByID godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} models.MemberResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /members/{id} [get]
func GetMemberByID(c *fiber.Ctx) error {
	member, err := members.GetMemberByID(c.Params("id"))
	if err != nil {
		if err == members.ErrMemberNotFound {
			return utils.HandleError(c, http.StatusNotFound, "ไม่พบสมาชิก")
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewMemberResponse(*member))
}

// CreateMember godoc
// @Summary Create a member
// @Description Create a member from multipart form (username, email, schedule, optional image file)
// @Tags members
// @Accept mpfd
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param schedule formData string false "Weekday names (comma separated)"
// @Param file formData file false "Profile image"
// @Success 201 {object} models.MemberResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /members [post]
func CreateMember(c *fiber.Ctx) error {
	req := models.CreateMemberRequest{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
	}
	if form, err := c.MultipartForm(); err == nil {
		req.Schedule = parseSchedule(form.Value["schedule"])
	}

	// validation ต้องผ่านก่อน ถึงจะไปแตะ store
	if req.Username == "" || req.Email == "" {
		return utils.HandleError(c, http.StatusBadRequest, "ต้องระบุ username และ email")
	}

	file, err := readUploadedFile(c)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "ไม่สามารถอ่านไฟล์รูปได้")
	}

	member, err := members.CreateMember(&req, file)
	if err != nil {
		log.Println("❌ Error creating member:", err)
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	roster.Invalidate()
	return c.Status(http.StatusCreated).JSON(models.NewMemberResponse(*member))
}

// UpdateMember godoc
// @Summary Update a member
// @Description Patch username/email/schedule; a new image file replaces profile_picture
// @Tags members
// @Accept mpfd
// @Produce json
// @Param id path string true "Member ID"
// @Param username formData string false "Username"
// @Param email formData string false "Email"
// @Param schedule formData string false "Weekday names (comma separated)"
// @Param file formData file false "Profile image"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /members/{id} [put]
func UpdateMember(c *fiber.Ctx) error {
	var req models.UpdateMemberRequest
	if v := c.FormValue("username"); v != "" {
		req.Username = &v
	}
	if v := c.FormValue("email"); v != "" {
		req.Email = &v
	}
	if form, err := c.MultipartForm(); err == nil {
		if days, ok := form.Value["schedule"]; ok {
			req.Schedule = parseSchedule(days)
			if req.Schedule == nil {
				req.Schedule = []string{} // ส่ง schedule ว่าง = ล้างตาราง
			}
		}
	}

	file, err := readUploadedFile(c)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "ไม่สามารถอ่านไฟล์รูปได้")
	}

	if err := members.UpdateMember(c.Params("id"), &req, file); err != nil {
		if err == members.ErrMemberNotFound {
			return utils.HandleError(c, http.StatusNotFound, "ไม่พบสมาชิก")
		}
		log.Println("❌ Error updating member:", err)
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	roster.Invalidate()
	return c.JSON(fiber.Map{"message": "Member updated successfully"})
}

// DeleteMember godoc
// @Summary Delete a member
// @Description Hard delete; failures are surfaced, not swallowed
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /members/{id} [delete]
func DeleteMember(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := members.DeleteMember(id); err != nil {
		if err == members.ErrMemberNotFound {
			return utils.HandleError(c, http.StatusNotFound, "ไม่พบสมาชิก")
		}
		log.Println("❌ Error deleting member:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "ไม่สามารถลบสมาชิกได้")
	}

	roster.RemoveMember(id)
	return c.JSON(fiber.Map{"message": "Member deleted successfully"})
}

// GetMembersBySchedule godoc
// @Summary Get members by weekday
// @Tags members
// @Produce json
// @Param day path string true "Weekday name (e.g. Monday)"
// @Success 200 {array} models.MemberResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /members/schedule/{day} [get]
func GetMembersBySchedule(c *fiber.Ctx) error {
	all, err := members.GetMembersBySchedule(c.Params("day"))
	if err != nil {
		log.Println("❌ Error fetching members by schedule:", err)
		return utils.HandleError(c, http.StatusInternalServerError, "ไม่สามารถดึงข้อมูลสมาชิกได้")
	}

	out := make([]models.MemberResponse, 0, len(all))
	for _, m := range all {
		out = append(out, models.NewMemberResponse(m))
	}
	return c.JSON(out)
}
