package repository

import (
	"context"
	"time"

	"kosku/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthTokenRepository struct {
	db *gorm.DB
}

func NewAuthTokenRepository(db *gorm.DB) *AuthTokenRepository {
	return &AuthTokenRepository{db: db}
}

type authTokenRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	Token     string    `gorm:"column:token;uniqueIndex"`
	Purpose   string    `gorm:"column:purpose"`
	ExpiresAt time.Time `gorm:"column:expires_at"`
	Used      bool      `gorm:"column:used"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (authTokenRow) TableName() string { return "auth_tokens" }

func toDomainAuthToken(m authTokenRow) *domain.AuthToken {
	return &domain.AuthToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		Purpose:   domain.TokenPurpose(m.Purpose),
		ExpiresAt: m.ExpiresAt,
		Used:      m.Used,
		CreatedAt: m.CreatedAt,
	}
}

func (r *AuthTokenRepository) Create(ctx context.Context, t *domain.AuthToken) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	m := authTokenRow{
		ID:        t.ID,
		UserID:    t.UserID,
		Token:     t.Token,
		Purpose:   string(t.Purpose),
		ExpiresAt: t.ExpiresAt,
		Used:      t.Used,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	t.CreatedAt = m.CreatedAt
	return nil
}

func (r *AuthTokenRepository) GetByToken(ctx context.Context, purpose domain.TokenPurpose, token string) (*domain.AuthToken, error) {
	var m authTokenRow
	tx := r.db.WithContext(ctx).
		Where("token = ? AND purpose = ?", token, string(purpose)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAuthToken(m), nil
}

// MarkUsed flips the token to used. Tokens are never deleted; the row stays
// behind as an audit trail.
func (r *AuthTokenRepository) MarkUsed(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&authTokenRow{}).Where("id = ?", id).
		Update("used", true).Error
}
