package domain

import "time"

type TokenPurpose string

const (
	TokenPurposeReset  TokenPurpose = "reset"
	TokenPurposeVerify TokenPurpose = "verify"
)

// AuthToken is a single-use, store-tracked token for password resets and
// account verification links. Tokens are retained after use for audit.
type AuthToken struct {
	ID        string       `json:"id"`
	UserID    int64        `json:"user_id"`
	Token     string       `json:"-"`
	Purpose   TokenPurpose `json:"purpose"`
	ExpiresAt time.Time    `json:"expires_at"`
	Used      bool         `json:"used"`
	CreatedAt time.Time    `json:"created_at"`
}

// Usable reports whether the token can still be redeemed at the given time.
func (t *AuthToken) Usable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
