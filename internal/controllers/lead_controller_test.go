package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/routes"
)

type fakeLeadService struct {
	leads []*models.Lead
}

func (s *fakeLeadService) List(ctx context.Context) ([]*models.Lead, error) {
	return s.leads, nil
}

func (s *fakeLeadService) Get(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	return s.leads[0], nil
}

func (s *fakeLeadService) Create(ctx context.Context, l *models.Lead) error {
	l.ID = primitive.NewObjectID()
	s.leads = append(s.leads, l)
	return nil
}

func (s *fakeLeadService) Update(ctx context.Context, l *models.Lead) error { return nil }

func (s *fakeLeadService) ChangeStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) error {
	return nil
}

func (s *fakeLeadService) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

func TestLeadCreateRespondsWithSuccessEnvelope(t *testing.T) {
	svc := &fakeLeadService{}
	c := NewLeadController(svc)

	body := `{"name":"Ravi","phone":"+919812345678","propertyName":"Sea View Residency"}`
	req := httptest.NewRequest(http.MethodPost, routes.LeadsBase, strings.NewReader(body))
	rec := httptest.NewRecorder()

	c.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var env struct {
		Success bool        `json:"success"`
		Data    models.Lead `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.Success)
	require.Equal(t, "Ravi", env.Data.Name)
	require.Equal(t, models.LeadStatusNew, env.Data.Status, "new enquiries start as New")
	require.Len(t, svc.leads, 1)
}

func TestLeadCreateValidationErrorEnvelope(t *testing.T) {
	c := NewLeadController(&fakeLeadService{})

	// Missing required phone.
	req := httptest.NewRequest(http.MethodPost, routes.LeadsBase, strings.NewReader(`{"name":"Ravi"}`))
	rec := httptest.NewRecorder()

	c.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.Equal(t, "validation_error", env.Error.Code)
	require.NotEmpty(t, env.Error.Message)
}

func TestLeadCreateMalformedBody(t *testing.T) {
	c := NewLeadController(&fakeLeadService{})

	req := httptest.NewRequest(http.MethodPost, routes.LeadsBase, strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	c.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"success":false`)
	require.Contains(t, rec.Body.String(), "invalid_payload")
}
