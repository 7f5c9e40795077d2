package dtos

import (
	"time"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
)

type BannerRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=500"`
	ImageURL    string     `json:"imageUrl" validate:"omitempty,url"`
	Status      string     `json:"status" validate:"omitempty,oneof=Active Scheduled Expired"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

func (r BannerRequest) ToModel() *models.Banner {
	status := models.BannerStatus(r.Status)
	if r.Status == "" {
		status = models.BannerStatusActive
	}
	return &models.Banner{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Status:      status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

type BannerStatusRequest struct {
	Status models.BannerStatus `json:"status" validate:"required"`
}

// BannerReorderRequest swaps the positions of two banners.
type BannerReorderRequest struct {
	OtherID string `json:"otherId" validate:"required"`
}
