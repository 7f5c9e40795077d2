package controllers

import (
	"net/http"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/app"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app: app}
}

type healthResponse struct {
	Status string `json:"status"`
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.Ping(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("Database unreachable")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Database unreachable",
			nil,
			err,
		)
		return
	}

	utils.RespondWithData(w, http.StatusOK, healthResponse{Status: "OK"})
}
