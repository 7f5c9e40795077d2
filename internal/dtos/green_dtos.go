package dtos

import "github.com/ameyclubrealty/clubrealty-admin-api/internal/models"

type GreenEntryRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,max=20"`
	PhotoURL string `json:"photoUrl" validate:"omitempty,url"`
}

func (r GreenEntryRequest) ToModel() *models.GoGreenEntry {
	return &models.GoGreenEntry{
		Name:     r.Name,
		Phone:    r.Phone,
		PhotoURL: r.PhotoURL,
	}
}
