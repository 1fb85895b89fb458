package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func cronRouter(expected string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/cron/reminders", CronKeyAuth(expected), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestCronKeyAuth_ValidKey(t *testing.T) {
	r := cronRouter("topsecret")

	req := httptest.NewRequest(http.MethodPost, "/cron/reminders", nil)
	req.Header.Set("x-api-key", "topsecret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCronKeyAuth_MissingKey(t *testing.T) {
	r := cronRouter("topsecret")

	req := httptest.NewRequest(http.MethodPost, "/cron/reminders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_MISSING")
}

func TestCronKeyAuth_WrongKey(t *testing.T) {
	r := cronRouter("topsecret")

	req := httptest.NewRequest(http.MethodPost, "/cron/reminders", nil)
	req.Header.Set("x-api-key", "guess")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_INVALID")
}

func TestCronKeyAuth_UnconfiguredKey(t *testing.T) {
	r := cronRouter("")

	req := httptest.NewRequest(http.MethodPost, "/cron/reminders", nil)
	req.Header.Set("x-api-key", "anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
