package middleware

import (
	"net/http"

	"kosku/internal/modules/auth"
	"kosku/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Session gates protected routes on the cookie pair. A valid access cookie
// passes straight through; an expired one is rotated from the refresh cookie
// before the request proceeds. If neither works, both cookies are cleared and
// the request is rejected. The caller ends up logged out, never crashed.
func Session(svc *auth.Service, cookies *auth.CookieManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if user := svc.CurrentUser(ctx, auth.ReadAccessCookie(c)); user != nil {
			c.Set("user_id", user.ID)
			c.Set("role", string(user.Role))
			c.Next()
			return
		}

		result, err := svc.Refresh(ctx, auth.ReadRefreshCookie(c))
		if err != nil {
			cookies.Clear(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":        "SESSION_EXPIRED",
					"message":     "Session expired, please log in again",
					"redirect_to": c.Request.URL.Path,
				},
			})
			return
		}

		cookies.SetPair(c, result.AccessToken, result.RefreshToken)
		c.Set("user_id", result.User.ID)
		c.Set("role", string(result.User.Role))

		c.Next()
	}
}

// RequireRole ensures that the authenticated user has the specified role.
// The role in the context comes from the freshly loaded user record, so a
// stale role inside an old token is never trusted.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in session")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
