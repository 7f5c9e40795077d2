package controllers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/dtos"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type BannerController struct {
	bannerService services.BannerService
}

func NewBannerController(bannerService services.BannerService) *BannerController {
	return &BannerController{bannerService: bannerService}
}

func (c *BannerController) List(w http.ResponseWriter, r *http.Request) {
	banners, err := c.bannerService.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, banners)
}

func (c *BannerController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	b, err := c.bannerService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, b)
}

func (c *BannerController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.BannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	b := req.ToModel()
	if err := c.bannerService.Create(r.Context(), b); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusCreated, b)
}

func (c *BannerController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.BannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	b := req.ToModel()
	b.ID = id
	if err := c.bannerService.Update(r.Context(), b); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, b)
}

func (c *BannerController) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.BannerStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	if err := c.bannerService.ChangeStatus(r.Context(), id, req.Status); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}

// Reorder swaps this banner's position with another one's.
func (c *BannerController) Reorder(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.BannerReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	otherID, err := primitive.ObjectIDFromHex(req.OtherID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid otherId", nil, err)
		return
	}

	if err := c.bannerService.Reorder(r.Context(), id, otherID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}

func (c *BannerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	if err := c.bannerService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}
