package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rotahub/internal/dto"
	"rotahub/internal/repository"
	"rotahub/pkg/jwt"
	"rotahub/pkg/redis"
)

var (
	ErrBadCredentials   = errors.New("invalid username or password")
	ErrNotRefreshToken  = errors.New("not a refresh token")
	ErrTokenBlacklisted = errors.New("token revoked")
)

// AuthService authenticates admin accounts and manages token lifecycles.
// The Redis blacklist is optional; without it logout is a client-side
// operation only.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
}

type authService struct {
	repo   *repository.Repository
	tokens *jwt.Manager
	cache  *redis.Client
	logger *zap.Logger
}

// NewAuthService builds the auth service. cache may be nil.
func NewAuthService(repo *repository.Repository, tokens *jwt.Manager, cache *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, tokens: tokens, cache: cache, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.AdminUser.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrBadCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin logged in", zap.String("username", user.Username))
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.tokens.AccessTokenTTL().Seconds()),
		User:         dto.AdminResponse{ID: user.ID, Username: user.Username, Role: user.Role},
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.tokens.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, ErrNotRefreshToken
	}
	if s.cache != nil {
		revoked, err := s.cache.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrTokenBlacklisted
		}
	}

	// Re-read the account so role changes and deletions take effect on refresh.
	user, err := s.repo.AdminUser.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: access,
		ExpiresIn:   int64(s.tokens.AccessTokenTTL().Seconds()),
		User:        dto.AdminResponse{ID: user.ID, Username: user.Username, Role: user.Role},
	}, nil
}

// Logout blacklists the presented token until its natural expiry.
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.cache == nil || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		return err
	}
	s.logger.Info("admin logged out", zap.String("username", claims.Username))
	return nil
}
