package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	AccessCookieName  = "access_token"
	RefreshCookieName = "refresh_token"
)

// CookieManager turns issued token pairs into Set-Cookie headers so services
// never touch the response directly.
type CookieManager struct {
	secure     bool
	sameSite   http.SameSite
	path       string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCookieManager(secure bool, sameSite, path string, accessTTL, refreshTTL time.Duration) *CookieManager {
	return &CookieManager{
		secure:     secure,
		sameSite:   parseSameSite(sameSite),
		path:       path,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}

func (cm *CookieManager) SetPair(c *gin.Context, access, refresh string) {
	cm.set(c, AccessCookieName, access, cm.accessTTL)
	cm.set(c, RefreshCookieName, refresh, cm.refreshTTL)
}

// Clear expires both cookies unconditionally.
func (cm *CookieManager) Clear(c *gin.Context) {
	cm.set(c, AccessCookieName, "", -time.Second)
	cm.set(c, RefreshCookieName, "", -time.Second)
}

func (cm *CookieManager) set(c *gin.Context, name, value string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cm.path,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cm.secure,
		SameSite: cm.sameSite,
	})
}

func ReadAccessCookie(c *gin.Context) string {
	v, err := c.Cookie(AccessCookieName)
	if err != nil {
		return ""
	}
	return v
}

func ReadRefreshCookie(c *gin.Context) string {
	v, err := c.Cookie(RefreshCookieName)
	if err != nil {
		return ""
	}
	return v
}
