package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/dtos"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type LeadController struct {
	leadService services.LeadService
}

func NewLeadController(leadService services.LeadService) *LeadController {
	return &LeadController{leadService: leadService}
}

func (c *LeadController) List(w http.ResponseWriter, r *http.Request) {
	leads, err := c.leadService.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, leads)
}

func (c *LeadController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	l, err := c.leadService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, l)
}

// Create is public: the consumer site posts enquiries here, no auth.
func (c *LeadController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	l := req.ToModel()
	l.Status = models.LeadStatusNew
	if err := c.leadService.Create(r.Context(), l); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusCreated, l)
}

func (c *LeadController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	l := req.ToModel()
	l.ID = id
	if err := c.leadService.Update(r.Context(), l); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, l)
}

func (c *LeadController) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.LeadStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	if err := c.leadService.ChangeStatus(r.Context(), id, req.Status); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}

func (c *LeadController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	if err := c.leadService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}
