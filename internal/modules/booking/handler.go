package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

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

// RegisterSessionRoutes mounts the customer-facing endpoints behind the
// session middleware.
func (h *Handler) RegisterSessionRoutes(protected *gin.RouterGroup) {
	protected.POST("/bookings", h.Create)
	protected.GET("/bookings", h.ListMine)
	protected.GET("/bookings/:id", h.Get)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/bookings", h.ListAll)
	admin.GET("/bookings/:id", h.Get)
	admin.POST("/bookings/:id/approve", h.Approve)
	admin.POST("/bookings/:id/reject", h.Reject)
	admin.POST("/bookings/:id/cancel", h.Cancel)
	admin.DELETE("/bookings/:id", h.Delete)
	admin.POST("/bookings/:id/documents", h.AttachDocument)
	admin.PUT("/bookings/:id/pricing", h.UpdatePricing)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking data is invalid")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListMine(c *gin.Context) {
	bookings, err := h.service.ListForUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ListAll(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	isAdmin := c.GetString("role") == string(domain.RoleAdmin)
	b, err := h.service.Get(c.Request.Context(), id, c.GetInt64("user_id"), isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only view your own bookings")
		default:
			response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, h.service.Reject)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.decide(c, h.service.Cancel)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) AttachDocument(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req AttachDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	doc, err := h.service.AttachDocument(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrInvalidDocument):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown document type")
		default:
			response.Error(c, http.StatusInternalServerError, "DOCUMENT_FAILED", "Failed to attach document")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"document": doc})
}

func (h *Handler) UpdatePricing(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdatePricing(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Pricing is invalid")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "VERSION_CONFLICT", "Booking was modified by someone else, reload and retry")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update pricing")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// decide runs one of the admin status transitions and maps its errors.
func (h *Handler) decide(c *gin.Context, op func(ctx context.Context, id int64) (*domain.Booking, error)) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	b, err := op(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrNotPending):
			response.Error(c, http.StatusBadRequest, "NOT_PENDING", "Booking has already been decided")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "VERSION_CONFLICT", "Booking was modified by someone else, reload and retry")
		default:
			response.Error(c, http.StatusInternalServerError, "DECISION_FAILED", "Failed to update booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return 0, false
	}
	return id, true
}
