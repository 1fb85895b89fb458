package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func cookieContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func cookieByName(res *http.Response, name string) *http.Cookie {
	for _, ck := range res.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestSetPair_WritesBothCookies(t *testing.T) {
	cm := NewCookieManager(true, "Strict", "/", time.Hour, 12*time.Hour)
	c, w := cookieContext()

	cm.SetPair(c, "access-value", "refresh-value")

	res := w.Result()
	access := cookieByName(res, AccessCookieName)
	refresh := cookieByName(res, RefreshCookieName)

	assert.NotNil(t, access)
	assert.NotNil(t, refresh)
	assert.Equal(t, "access-value", access.Value)
	assert.Equal(t, "refresh-value", refresh.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, int(time.Hour.Seconds()), access.MaxAge)
	assert.Equal(t, int((12 * time.Hour).Seconds()), refresh.MaxAge)
}

func TestClear_ExpiresBothCookies(t *testing.T) {
	cm := NewCookieManager(false, "Strict", "/", time.Hour, 12*time.Hour)
	c, w := cookieContext()

	cm.Clear(c)

	res := w.Result()
	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		ck := cookieByName(res, name)
		assert.NotNil(t, ck)
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge)
	}
}

func TestParseSameSite(t *testing.T) {
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite("Lax"))
	assert.Equal(t, http.SameSiteNoneMode, parseSameSite("none"))
	assert.Equal(t, http.SameSiteStrictMode, parseSameSite("Strict"))
	assert.Equal(t, http.SameSiteStrictMode, parseSameSite("bogus"))
}
