package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/dtos"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type BlogController struct {
	blogService services.BlogService
}

func NewBlogController(blogService services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

func (c *BlogController) List(w http.ResponseWriter, r *http.Request) {
	posts, err := c.blogService.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, posts)
}

func (c *BlogController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	b, err := c.blogService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, b)
}

func (c *BlogController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	b, err := c.blogService.GetBySlug(r.Context(), slug)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, b)
}

func (c *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.BlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	b := req.ToModel()
	if err := c.blogService.Create(r.Context(), b); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusCreated, b)
}

func (c *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.BlogPostRequest
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
	if err := c.blogService.Update(r.Context(), b); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, b)
}

func (c *BlogController) SetPublished(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.SetPublishedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}

	if err := c.blogService.SetPublished(r.Context(), id, req.Published); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}

func (c *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	if err := c.blogService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}
