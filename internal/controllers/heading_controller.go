package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/dtos"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type HeadingController struct {
	headingService services.HeadingService
}

func NewHeadingController(headingService services.HeadingService) *HeadingController {
	return &HeadingController{headingService: headingService}
}

func (c *HeadingController) List(w http.ResponseWriter, r *http.Request) {
	headings, err := c.headingService.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, headings)
}

func (c *HeadingController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	h, err := c.headingService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, h)
}

func (c *HeadingController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.HeadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	h := req.ToModel()
	if err := c.headingService.Create(r.Context(), h); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusCreated, h)
}

func (c *HeadingController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.HeadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	h := req.ToModel()
	h.ID = id
	if err := c.headingService.Update(r.Context(), h); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, h)
}

func (c *HeadingController) Move(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.HeadingMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	if err := c.headingService.Move(r.Context(), id, services.MoveDirection(req.Direction)); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}

func (c *HeadingController) ToggleVisible(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	if err := c.headingService.ToggleVisible(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}

func (c *HeadingController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	if err := c.headingService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}
