package dtos

import "github.com/ameyclubrealty/clubrealty-admin-api/internal/models"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Admin is the admin user DTO, omitting the password hash.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func NewAdminFromModel(a models.Admin) Admin {
	return Admin{
		ID:    a.ID.Hex(),
		Email: a.Email,
		Name:  a.Name,
	}
}

type LoginResponse struct {
	Admin Admin `json:"admin"`
}

type MeResponse struct {
	Admin Admin `json:"admin"`
}
