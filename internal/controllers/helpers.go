package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/middleware"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

// idFromRequest parses the {id} path variable as an ObjectID hex
// string, responding 400 itself on failure.
func idFromRequest(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	hex := mux.Vars(r)["id"]
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id", nil, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// adminFromContext resolves the authenticated admin from the subject
// claim the auth middleware stored on the request context.
func adminFromContext(r *http.Request, auth services.AuthService) (*models.Admin, error) {
	sub, _ := r.Context().Value(middleware.ContextKeyAdminID).(string)
	id, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return nil, err
	}
	return auth.GetAdmin(r.Context(), id)
}

// respondServiceError maps the service-layer sentinel errors onto the
// envelope; anything unrecognized falls through to HandleAppError.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Record not found", nil, err)
	case errors.Is(err, utils.ErrSlugExists):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeSlugExists, "Slug already in use", nil, err)
	case errors.Is(err, utils.ErrInvalidStatus):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidStatus, "Invalid status value", nil, err)
	default:
		utils.HandleAppError(w, err)
	}
}
