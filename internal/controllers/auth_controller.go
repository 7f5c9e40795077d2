package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/config"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/dtos"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/middleware"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type AuthController struct {
	authService services.AuthService
	cfg         *config.Config
}

func NewAuthController(authService services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{authService: authService, cfg: cfg}
}

var validate = validator.New()

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	admin, access, refresh, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil, err)
			return
		}
		utils.HandleAppError(w, err)
		return
	}

	c.setAuthCookies(w, access, refresh)
	utils.RespondWithData(w, http.StatusOK, dtos.LoginResponse{Admin: dtos.NewAdminFromModel(*admin)})
}

func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	refresh, err := refreshTokenFromRequest(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing refresh token", nil, err)
		return
	}

	access, newRefresh, err := c.authService.Refresh(r.Context(), refresh)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Refresh failed", nil, err)
		return
	}

	c.setAuthCookies(w, access, newRefresh)
	utils.RespondWithData(w, http.StatusOK, nil)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if refresh, err := refreshTokenFromRequest(r); err == nil {
		// A revoked or unknown token still logs the client out.
		if lerr := c.authService.Logout(r.Context(), refresh); lerr != nil {
			utils.Logger.WithError(lerr).Warn("Failed to revoke refresh token on logout")
		}
	}

	c.clearAuthCookies(w)
	utils.RespondWithData(w, http.StatusOK, nil)
}

// Me returns the authenticated admin; the SPA calls it on load to
// decide between dashboard and login page.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	sub, _ := r.Context().Value(middleware.ContextKeyAdminID).(string)
	adminID, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid session", nil, err)
		return
	}

	admin, err := c.authService.GetAdmin(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Admin no longer exists", nil, err)
			return
		}
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithData(w, http.StatusOK, dtos.MeResponse{Admin: dtos.NewAdminFromModel(*admin)})
}

func (c *AuthController) setAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookieName,
		Value:    access,
		Path:     "/",
		MaxAge:   int(c.cfg.AccessTokenExpiry / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.RefreshTokenCookieName,
		Value:    refresh,
		Path:     "/api/v1/auth",
		MaxAge:   int(c.cfg.RefreshTokenExpiry / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (c *AuthController) clearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name: middleware.AccessTokenCookieName, Value: "", Path: "/", MaxAge: -1,
		HttpOnly: true, Secure: true, SameSite: http.SameSiteNoneMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name: middleware.RefreshTokenCookieName, Value: "", Path: "/api/v1/auth", MaxAge: -1,
		HttpOnly: true, Secure: true, SameSite: http.SameSiteNoneMode,
	})
}

func refreshTokenFromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(middleware.RefreshTokenCookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.RefreshToken != "" {
		return body.RefreshToken, nil
	}
	return "", errors.New("no refresh token in cookie or body")
}
