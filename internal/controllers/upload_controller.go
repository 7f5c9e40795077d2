package controllers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/config"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/dtos"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type UploadController struct {
	uploadService services.UploadService
	cfg           *config.Config
}

func NewUploadController(uploadService services.UploadService, cfg *config.Config) *UploadController {
	return &UploadController{uploadService: uploadService, cfg: cfg}
}

func (c *UploadController) PropertyImage(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, func(filename string, file multipartFile) (string, error) {
		return c.uploadService.UploadPropertyImage(r.Context(), ownerID(r), filename, file)
	})
}

func (c *UploadController) BlogImage(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, func(filename string, file multipartFile) (string, error) {
		return c.uploadService.UploadBlogImage(r.Context(), ownerID(r), filename, file)
	})
}

func (c *UploadController) BannerImage(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, func(filename string, file multipartFile) (string, error) {
		return c.uploadService.UploadBannerImage(r.Context(), ownerID(r), filename, file)
	})
}

func (c *UploadController) GreenPhoto(w http.ResponseWriter, r *http.Request) {
	c.handle(w, r, func(filename string, file multipartFile) (string, error) {
		return c.uploadService.UploadGreenPhoto(r.Context(), filename, file)
	})
}

type multipartFile interface {
	Read(p []byte) (int, error)
}

// handle reads the "file" part of a multipart form, enforcing the
// configured size cap, and responds with the stored public URL.
func (c *UploadController) handle(w http.ResponseWriter, r *http.Request, store func(string, multipartFile) (string, error)) {
	r.Body = http.MaxBytesReader(w, r.Body, c.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(c.cfg.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.RespondErrorWithCode(w, http.StatusRequestEntityTooLarge, utils.ErrCodeFileTooLarge, "File exceeds the upload size limit", nil, err)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart form", nil, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Missing file field", nil, err)
		return
	}
	defer file.Close()

	url, err := store(header.Filename, file)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeUploadFailed, "Upload failed", nil, err)
		return
	}

	utils.RespondWithData(w, http.StatusCreated, dtos.UploadResponse{URL: url})
}

// ownerID is the {id} path segment of the owning record. Media can be
// uploaded before the record exists; "new" gets a temporary id the
// client carries into the eventual create call.
func ownerID(r *http.Request) string {
	id := mux.Vars(r)["id"]
	if id == "" || id == "new" {
		return uuid.New().String()
	}
	return id
}
