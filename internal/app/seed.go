package app

import (
	"context"
	"strings"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

// seedAdmin creates the configured admin account on first boot. There
// is no registration endpoint; the seed account is the only way in.
func (a *App) seedAdmin(ctx context.Context) error {
	count, err := a.Admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		utils.Logger.Info("Admin account already exists; skipping seed.")
		return nil
	}

	hash, err := utils.HashPassword(a.Config.SeedAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Email:        strings.ToLower(a.Config.SeedAdminEmail),
		Name:         a.Config.SeedAdminName,
		PasswordHash: hash,
	}
	if err := a.Admins.Create(ctx, admin); err != nil {
		return err
	}

	utils.Logger.Infof("Successfully seeded default admin (email=%s).", admin.Email)
	return nil
}
