package cost

import (
	"errors"
	"net/http"

	"kosku/internal/domain"
	"kosku/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the cost ledger under /costs/:kind. The kind
// segment selects the fixed, variable, or support ledger.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	costs := admin.Group("/costs/:kind")
	{
		costs.GET("", h.List)
		costs.POST("", h.Create)
		costs.GET("/:id", h.Get)
		costs.PUT("/:id", h.Update)
		costs.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	records, err := h.service.List(c.Request.Context(), kind)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load cost records")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"costs": records})
}

func (h *Handler) Get(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	rec, err := h.service.Get(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cost record not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load cost record")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cost": rec})
}

func (h *Handler) Create(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var req CreateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rec, err := h.service.Create(c.Request.Context(), kind, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cost data is invalid")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create cost record")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"cost": rec})
}

func (h *Handler) Update(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	var req UpdateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rec, err := h.service.Update(c.Request.Context(), kind, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cost record not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cost data is invalid")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "VERSION_CONFLICT", "Cost record was modified by someone else, reload and retry")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update cost record")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cost": rec})
}

func (h *Handler) Delete(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cost record not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete cost record")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) kind(c *gin.Context) (domain.CostKind, bool) {
	kind, err := ParseKind(c.Param("kind"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown cost kind")
		return "", false
	}
	return kind, true
}
