package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/config"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/repositories"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

// AuthService is the email/password sign-in behind the dashboard.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Admin, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	GetAdmin(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
}

type authService struct {
	adminRepo repositories.AdminRepository
	tokenRepo repositories.TokenRepository
	jwtSvc    JWTService
}

func NewAuthService(cfg *config.Config, adminRepo repositories.AdminRepository, tokenRepo repositories.TokenRepository) AuthService {
	return &authService{
		adminRepo: adminRepo,
		tokenRepo: tokenRepo,
		jwtSvc:    NewJWTService(cfg, tokenRepo),
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Admin, string, string, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to look up admin on login")
		return nil, "", "", err
	}
	if admin == nil || !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, "", "", utils.ErrInvalidCredentials
	}

	// One active session per admin: older refresh tokens are revoked.
	if err := s.tokenRepo.DeleteAllByAdminID(ctx, admin.ID); err != nil {
		utils.Logger.WithError(err).Error("Failed to revoke old refresh tokens on login")
	}

	access, err := s.jwtSvc.GenerateAccessToken(ctx, admin.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to generate access token")
		return nil, "", "", err
	}
	refresh, err := s.jwtSvc.GenerateRefreshToken(ctx, admin.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to generate refresh token")
		return nil, "", "", err
	}

	return admin, access, refresh.Token, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	return s.jwtSvc.RefreshToken(ctx, refreshToken)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.jwtSvc.Logout(ctx, refreshToken)
}

func (s *authService) GetAdmin(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, utils.ErrNotFound
	}
	return admin, nil
}
