package auth

import (
	"errors"
	"net/http"

	"kosku/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
	cookies *CookieManager
}

func NewHandler(service *Service, cookies *CookieManager) *Handler {
	return &Handler{service: service, cookies: cookies}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/verify", h.Verify)
		authGroup.POST("/password/forgot", h.ForgotPassword)
		authGroup.POST("/password/reset", h.ResetPassword)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
		userGroup.PUT("/me", h.UpdateProfile)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrPhoneAlreadyUsed):
			response.Error(c, http.StatusConflict, "PHONE_EXISTS", "This phone is already registered to a verified account")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful. Check WhatsApp for your verification link.",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		// No cookie is ever set on a failed login.
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	h.cookies.SetPair(c, result.AccessToken, result.RefreshToken)

	response.Success(c, http.StatusOK, gin.H{
		"user": result.User,
	})
}

// Refresh rotates both cookies. Any failure clears them: the client ends up
// logged out, never half-authenticated.
func (h *Handler) Refresh(c *gin.Context) {
	result, err := h.service.Refresh(c.Request.Context(), ReadRefreshCookie(c))
	if err != nil {
		h.cookies.Clear(c)
		response.Error(c, http.StatusUnauthorized, "SESSION_EXPIRED", "Session expired, please log in again")
		return
	}

	h.cookies.SetPair(c, result.AccessToken, result.RefreshToken)
	response.Success(c, http.StatusOK, gin.H{"refreshed": true})
}

func (h *Handler) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing token")
		return
	}

	if err := h.service.Verify(c.Request.Context(), token); err != nil {
		switch {
		case errors.Is(err, ErrTokenInvalid):
			response.Error(c, http.StatusBadRequest, "TOKEN_INVALID", "Verification link is invalid or expired")
		case errors.Is(err, ErrAlreadyVerified):
			response.Error(c, http.StatusConflict, "ALREADY_VERIFIED", "Account is already verified")
		case errors.Is(err, ErrPhoneAlreadyUsed):
			response.Error(c, http.StatusConflict, "PHONE_EXISTS", "Another verified account already uses this phone")
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "VERIFY_FAILED", "Failed to verify account")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Account verified"})
}

// ForgotPassword answers the same message whether or not the email exists.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "Failed to process request")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "If the account exists, a reset link has been sent via WhatsApp.",
	})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.PerformPasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, ErrTokenInvalid) {
			response.Error(c, http.StatusBadRequest, "TOKEN_INVALID", "Reset link is invalid or expired")
			return
		}
		response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "Failed to reset password")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *Handler) GetMe(c *gin.Context) {
	user := h.service.CurrentUser(c.Request.Context(), ReadAccessCookie(c))
	if user == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not logged in")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrPhoneAlreadyUsed) {
			response.Error(c, http.StatusConflict, "PHONE_EXISTS", "Another verified account already uses this phone")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
