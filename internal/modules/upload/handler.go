package upload

import (
	"errors"
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

func (h *Handler) RegisterSessionRoutes(protected *gin.RouterGroup) {
	protected.POST("/uploads/:category", h.Upload)
}

func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing file field")
		return
	}

	result, err := h.service.Save(c.Request.Context(), c.GetInt64("user_id"), c.Param("category"), fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrBadCategory):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown upload category")
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File is empty")
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "FILE_TOO_LARGE", "File exceeds the size limit")
		case errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "File type is not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store file")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}
