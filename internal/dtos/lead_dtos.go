package dtos

import "github.com/ameyclubrealty/clubrealty-admin-api/internal/models"

type LeadRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"required,max=20"`
	PropertyName string `json:"propertyName" validate:"max=200"`
	// Status is ignored on the public create endpoint; new enquiries
	// always start as New.
	Status models.LeadStatus `json:"status" validate:"omitempty,oneof=New Contacted Qualified Unqualified"`
}

func (r LeadRequest) ToModel() *models.Lead {
	status := r.Status
	if status == "" {
		status = models.LeadStatusNew
	}
	return &models.Lead{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		PropertyName: r.PropertyName,
		Status:       status,
	}
}

type LeadStatusRequest struct {
	Status models.LeadStatus `json:"status" validate:"required"`
}
