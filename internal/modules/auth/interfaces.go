package auth

import (
	"context"

	"kosku/internal/domain"
)

// UserRepository defines the user store operations the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsVerifiedPhone(ctx context.Context, phone string, excludeID int64) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	SetVerified(ctx context.Context, id int64) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}

// TokenRepository stores single-use reset and verification tokens.
type TokenRepository interface {
	Create(ctx context.Context, t *domain.AuthToken) error
	GetByToken(ctx context.Context, purpose domain.TokenPurpose, token string) (*domain.AuthToken, error)
	MarkUsed(ctx context.Context, id string) error
}
