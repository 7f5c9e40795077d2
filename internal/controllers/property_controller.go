package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/dtos"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/services"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type PropertyController struct {
	propertyService services.PropertyService
	authService     services.AuthService
}

func NewPropertyController(propertyService services.PropertyService, authService services.AuthService) *PropertyController {
	return &PropertyController{propertyService: propertyService, authService: authService}
}

// List applies the filter built from query parameters. Unknown or
// empty parameters are ignored; "all" is treated as unset.
func (c *PropertyController) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid filter parameter", nil, err)
		return
	}

	properties, err := c.propertyService.List(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, properties)
}

func (c *PropertyController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	p, err := c.propertyService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, p)
}

func (c *PropertyController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	p := req.ToModel()
	if err := c.propertyService.Create(r.Context(), p); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusCreated, p)
}

func (c *PropertyController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	p := req.ToModel()
	p.ID = id
	if err := c.propertyService.Update(r.Context(), p); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, p)
}

func (c *PropertyController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}
	if err := c.propertyService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}

func (c *PropertyController) SetPublished(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.SetPublishedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}

	// Publication is attributed to the authenticated admin.
	publishedBy := ""
	if admin, err := adminFromContext(r, c.authService); err == nil {
		publishedBy = admin.Name
		if publishedBy == "" {
			publishedBy = admin.Email
		}
	}

	if err := c.propertyService.SetPublished(r.Context(), id, req.Published, publishedBy); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}

func (c *PropertyController) SetListingIntent(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(w, r)
	if !ok {
		return
	}

	var req dtos.SetListingIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	if err := c.propertyService.SetListingIntent(r.Context(), id, req.ListingIntent); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithData(w, http.StatusOK, nil)
}

// filterFromQuery builds a PropertyFilter from list query parameters:
// status, propertyType, listingIntent, minPrice, maxPrice, bedrooms,
// bathrooms, publishedBy, dateFrom, dateTo, date (exact day), q.
func filterFromQuery(r *http.Request) (services.PropertyFilter, error) {
	q := r.URL.Query()
	f := services.PropertyFilter{
		Status:        q.Get("status"),
		PropertyType:  q.Get("propertyType"),
		ListingIntent: q.Get("listingIntent"),
		PublishedBy:   q.Get("publishedBy"),
		SearchQuery:   q.Get("q"),
	}

	var err error
	if f.MinPrice, err = floatParam(q.Get("minPrice")); err != nil {
		return f, err
	}
	if f.MaxPrice, err = floatParam(q.Get("maxPrice")); err != nil {
		return f, err
	}
	if f.Bedrooms, err = intParam(q.Get("bedrooms")); err != nil {
		return f, err
	}
	if f.Bathrooms, err = intParam(q.Get("bathrooms")); err != nil {
		return f, err
	}
	if f.DateFrom, err = dateParam(q.Get("dateFrom")); err != nil {
		return f, err
	}
	if f.DateTo, err = dateParam(q.Get("dateTo")); err != nil {
		return f, err
	}
	if f.ExactDate, err = dateParam(q.Get("date")); err != nil {
		return f, err
	}
	return f, nil
}

func floatParam(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func dateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		// Full timestamps are accepted too.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
