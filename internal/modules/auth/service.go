package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"kosku/internal/domain"
	jwtsvc "kosku/internal/pkg/jwt"
	"kosku/internal/pkg/whatsapp"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const verifyTokenTTL = 24 * time.Hour

type jwtService interface {
	GeneratePair(userID int64, role string) (access string, refresh string, err error)
	ParseAccess(token string) (*jwtsvc.Claims, error)
	ParseRefresh(token string) (*jwtsvc.Claims, error)
}

// Service contains all business logic for authentication
type Service struct {
	users         UserRepository
	tokens        TokenRepository
	jwt           jwtService
	wa            whatsapp.Sender
	baseURL       string
	resetTokenTTL time.Duration
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func NewService(
	users UserRepository,
	tokens TokenRepository,
	jwt jwtService,
	wa whatsapp.Sender,
	baseURL string,
	resetTokenTTL time.Duration,
) *Service {
	return &Service{
		users:         users,
		tokens:        tokens,
		jwt:           jwt,
		wa:            wa,
		baseURL:       strings.TrimRight(baseURL, "/"),
		resetTokenTTL: resetTokenTTL,
	}
}

// Register creates a customer account and dispatches a verification link over
// WhatsApp. It never issues tokens: the user logs in separately.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyExists
	}

	taken, err := s.users.ExistsVerifiedPhone(ctx, req.Phone, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrPhoneAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        strings.TrimSpace(req.Phone),
		Role:         domain.RoleCustomer,
		IsVerified:   false,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return ErrEmailAlreadyExists
		}
		return err
	}

	token, err := s.issueToken(ctx, user.ID, domain.TokenPurposeVerify, verifyTokenTTL)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v1/auth/verify?token=%s", s.baseURL, token)
	msg := fmt.Sprintf(
		"Halo %s! Terima kasih sudah mendaftar di Kosku. Klik tautan berikut untuk verifikasi akun kamu: %s",
		user.Name, link,
	)
	if err := s.wa.Send(ctx, user.Phone, msg); err != nil {
		// Registration stands; the user can request a new link later.
		log.Printf("verification dispatch failed user_id=%d: %v", user.ID, err)
	}

	return nil
}

// Login validates credentials and issues a fresh access/refresh pair. The
// handler converts the pair into cookies.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, refresh, err := s.jwt.GeneratePair(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// CurrentUser resolves the user behind an access token. A missing or invalid
// token means "not logged in", never an error the caller has to branch on.
func (s *Service) CurrentUser(ctx context.Context, accessToken string) *domain.User {
	if accessToken == "" {
		return nil
	}
	claims, err := s.jwt.ParseAccess(accessToken)
	if err != nil {
		return nil
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil
	}
	user.PasswordHash = ""
	return user
}

// Refresh rotates the session: a valid refresh token yields a brand-new
// access/refresh pair. The old pair is dead either way. Role comes from the
// freshly loaded user record, never from the old claims.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	if refreshToken == "" {
		return nil, ErrSessionInvalid
	}
	claims, err := s.jwt.ParseRefresh(refreshToken)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	access, refresh, err := s.jwt.GeneratePair(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// Verify redeems a verification token: single use, unexpired, account not
// already verified, and no other verified account holding the same phone.
func (s *Service) Verify(ctx context.Context, token string) error {
	t, err := s.tokens.GetByToken(ctx, domain.TokenPurposeVerify, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTokenInvalid
		}
		return err
	}
	if !t.Usable(time.Now()) {
		return ErrTokenInvalid
	}

	user, err := s.users.GetByID(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	if user.Phone != "" {
		taken, err := s.users.ExistsVerifiedPhone(ctx, user.Phone, user.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrPhoneAlreadyUsed
		}
	}

	if err := s.users.SetVerified(ctx, user.ID); err != nil {
		return err
	}
	return s.tokens.MarkUsed(ctx, t.ID)
}

// RequestPasswordReset always reports success to the caller so account
// existence cannot be probed; a link is dispatched only for verified accounts
// with a phone number.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if !user.IsVerified || user.Phone == "" {
		return nil
	}

	token, err := s.issueToken(ctx, user.ID, domain.TokenPurposeReset, s.resetTokenTTL)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	msg := fmt.Sprintf(
		"Halo %s, kami menerima permintaan reset password akun Kosku kamu. Gunakan tautan ini dalam 1 jam: %s. Abaikan pesan ini jika kamu tidak memintanya.",
		user.Name, link,
	)
	if err := s.wa.Send(ctx, user.Phone, msg); err != nil {
		log.Printf("reset dispatch failed user_id=%d: %v", user.ID, err)
	}
	return nil
}

// PerformPasswordReset redeems a reset token and stores the new password hash.
// A second redemption of the same token fails.
func (s *Service) PerformPasswordReset(ctx context.Context, token, newPassword string) error {
	t, err := s.tokens.GetByToken(ctx, domain.TokenPurposeReset, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTokenInvalid
		}
		return err
	}
	if !t.Usable(time.Now()) {
		return ErrTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, t.UserID, string(hash)); err != nil {
		return err
	}
	return s.tokens.MarkUsed(ctx, t.ID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" && req.Phone != user.Phone {
		taken, err := s.users.ExistsVerifiedPhone(ctx, req.Phone, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPhoneAlreadyUsed
		}
		user.Phone = req.Phone
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) issueToken(ctx context.Context, userID int64, purpose domain.TokenPurpose, ttl time.Duration) (string, error) {
	raw, err := randomToken()
	if err != nil {
		return "", err
	}
	t := &domain.AuthToken{
		UserID:    userID,
		Token:     raw,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.tokens.Create(ctx, t); err != nil {
		return "", err
	}
	return raw, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
