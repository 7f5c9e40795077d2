package services

import (
	"context"
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/config"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/middleware"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/repositories"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type JWTService interface {
	GenerateAccessToken(ctx context.Context, adminID primitive.ObjectID) (string, error)
	GenerateRefreshToken(ctx context.Context, adminID primitive.ObjectID) (*models.RefreshToken, error)

	// RefreshToken rotates a refresh token, returning a new access
	// token and a new refresh token string.
	RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error)

	Logout(ctx context.Context, refreshTokenString string) error
}

type jwtService struct {
	privateKey    *rsa.PrivateKey
	publicKey     *rsa.PublicKey
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	tokenRepo     repositories.TokenRepository
}

func NewJWTService(cfg *config.Config, tokenRepo repositories.TokenRepository) JWTService {
	return &jwtService{
		privateKey:    cfg.RSAPrivateKey,
		publicKey:     cfg.RSAPublicKey,
		accessExpiry:  cfg.AccessTokenExpiry,
		refreshExpiry: cfg.RefreshTokenExpiry,
		tokenRepo:     tokenRepo,
	}
}

func (j *jwtService) GenerateAccessToken(_ context.Context, adminID primitive.ObjectID) (string, error) {
	claims := jwt.MapClaims{
		"iss": middleware.TokenIssuer,
		"sub": adminID.Hex(),
		"exp": time.Now().Add(j.accessExpiry).Unix(),
		"iat": time.Now().Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(j.privateKey)
}

func (j *jwtService) GenerateRefreshToken(ctx context.Context, adminID primitive.ObjectID) (*models.RefreshToken, error) {
	rt := &models.RefreshToken{
		AdminID:   adminID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(j.refreshExpiry),
	}
	if err := j.tokenRepo.Store(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (j *jwtService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	stored, err := j.tokenRepo.GetByToken(ctx, refreshTokenString)
	if err != nil {
		return "", "", err
	}
	if stored == nil || stored.IsExpired() {
		if stored != nil {
			_ = j.tokenRepo.DeleteByToken(ctx, refreshTokenString)
		}
		return "", "", utils.ErrTokenRevoked
	}

	// Rotate: the old refresh token is single-use.
	if err := j.tokenRepo.DeleteByToken(ctx, refreshTokenString); err != nil {
		return "", "", err
	}

	access, err := j.GenerateAccessToken(ctx, stored.AdminID)
	if err != nil {
		return "", "", err
	}
	next, err := j.GenerateRefreshToken(ctx, stored.AdminID)
	if err != nil {
		return "", "", err
	}
	return access, next.Token, nil
}

func (j *jwtService) Logout(ctx context.Context, refreshTokenString string) error {
	return j.tokenRepo.DeleteByToken(ctx, refreshTokenString)
}
