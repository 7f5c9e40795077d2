package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/dtos"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type GreenController struct {
	greenService services.GreenService
}

func NewGreenController(greenService services.GreenService) *GreenController {
	return &GreenController{greenService: greenService}
}

func (c *GreenController) List(w http.ResponseWriter, r *http.Request) {
	entries, err := c.greenService.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, entries)
}

func (c *GreenController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	e, err := c.greenService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, e)
}

// Create is public: campaign submissions come from the consumer site.
func (c *GreenController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.GreenEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	e := req.ToModel()
	if err := c.greenService.Create(r.Context(), e); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusCreated, e)
}

func (c *GreenController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	if err := c.greenService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}
