package reminder

import (
	"log"
	"net/http"

	"kosku/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type triggerRequest struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterCronRoutes mounts the trigger endpoint; the caller wraps the group
// with the x-api-key middleware.
func (h *Handler) RegisterCronRoutes(cron *gin.RouterGroup) {
	cron.POST("/reminders", h.Trigger)
}

func (h *Handler) Trigger(c *gin.Context) {
	var req triggerRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.Source != "" {
		log.Printf("reminder: triggered source=%s timestamp=%s", req.Source, req.Timestamp)
	}

	summary, err := h.service.Run(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REMINDER_FAILED", "Reminder run failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notificationsSummary": summary,
		"status":               "completed",
	})
}
