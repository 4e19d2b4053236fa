package controllers

import (
	DB "Backend-Verdancy/src/database"
	"Backend-Verdancy/src/jobs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TriggerMonthlyReset - enqueue a monthly attendance reset to run after delaySec seconds (default 5s)
// TriggerMonthlyReset godoc
// @Summary      Enqueue monthly attendance reset job
// @Description  Enqueue a monthly-reset task to run after delaySec seconds. Requires Asynq (Redis) configured.
// @Tags         jobs
// @Produce      json
// @Param        delaySec  query     int  false  "Delay before the job runs (seconds)"
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/jobs/monthly-reset [post]
func TriggerMonthlyReset(c *fiber.Ctx) error {
	if DB.AsynqClient == nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": "asynq client not initialized"})
	}

	delaySec := c.QueryInt("delaySec", 5)
	if delaySec < 0 {
		delaySec = 5
	}

	task, err := jobs.NewMonthlyResetTask(time.Now())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// TaskID ใหม่ทุกครั้งที่ enqueue จะได้ไม่ชนกับรอบก่อนที่ค้างใน archive
	_, err = DB.AsynqClient.Enqueue(task,
		asynq.ProcessIn(time.Duration(delaySec)*time.Second),
		asynq.TaskID("monthly-reset-"+uuid.NewString()),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "enqueued", "delaySec": delaySec})
}
