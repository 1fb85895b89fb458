package cashflow

import (
	"net/http"

	"kosku/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/cashflow", h.Report)
}

func (h *Handler) Report(c *gin.Context) {
	summary, err := h.service.Report(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CASHFLOW_FAILED", "Failed to derive cashflow")
		return
	}
	response.Success(c, http.StatusOK, summary)
}
