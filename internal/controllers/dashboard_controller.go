package controllers

import (
	"net/http"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/dtos"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

func (c *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.dashboardService.Summary(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, summary)
}

// RecordVisit is public: the consumer site pings it on page load.
func (c *DashboardController) RecordVisit(w http.ResponseWriter, r *http.Request) {
	visits, err := c.dashboardService.RecordVisit(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dtos.VisitResponse{Visits: visits})
}

func (c *DashboardController) Visits(w http.ResponseWriter, r *http.Request) {
	visits, err := c.dashboardService.Visits(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, dtos.VisitResponse{Visits: visits})
}
