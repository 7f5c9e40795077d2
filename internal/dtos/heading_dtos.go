package dtos

import "github.com/ameyclubrealty/clubrealty-admin-api/internal/models"

type HeadingRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	DisplayName string   `json:"displayName" validate:"required,max=100"`
	FieldType   string   `json:"fieldType" validate:"required,oneof=text number date select boolean textarea"`
	Required    bool     `json:"required"`
	Visible     bool     `json:"visible"`
	Options     []string `json:"options"`
}

func (r HeadingRequest) ToModel() *models.PropertyHeading {
	h := &models.PropertyHeading{
		Name:        r.Name,
		DisplayName: r.DisplayName,
		FieldType:   models.FieldType(r.FieldType),
		Required:    r.Required,
		Visible:     r.Visible,
		Options:     r.Options,
	}
	h.Normalize()
	return h
}

type HeadingMoveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}
