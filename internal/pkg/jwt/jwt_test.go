package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePairAndParse(t *testing.T) {
	svc := New("secret", time.Hour, 12*time.Hour)

	access, refresh, err := svc.GeneratePair(42, "customer")
	assert.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ParseAccess(access)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "customer", claims.Role)

	claims, err = svc.ParseRefresh(refresh)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestParseRejectsWrongTokenType(t *testing.T) {
	svc := New("secret", time.Hour, 12*time.Hour)

	access, refresh, err := svc.GeneratePair(42, "admin")
	assert.NoError(t, err)

	_, err = svc.ParseAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	svc := New("secret", time.Hour, 12*time.Hour)
	other := New("another-secret", time.Hour, 12*time.Hour)

	access, _, err := svc.GeneratePair(42, "admin")
	assert.NoError(t, err)

	_, err = other.ParseAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := New("secret", -time.Minute, 12*time.Hour)

	access, _, err := svc.GeneratePair(42, "admin")
	assert.NoError(t, err)

	_, err = svc.ParseAccess(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := New("secret", time.Hour, 12*time.Hour)

	_, err := svc.ParseAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
