package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agro-registry/internal/apperror"
	"agro-registry/internal/dto"
	"agro-registry/internal/middleware"
	"agro-registry/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// mockOrganizationService is a mock implementation of OrganizationService for testing
type mockOrganizationService struct {
	org        *model.Organization
	list       []model.Organization
	properties []model.Property
	deleted    bool
	err        error

	createCalls int
	lastCreate  dto.CreateOrganizationRequest
	lastUpdate  dto.UpdateOrganizationRequest
}

func (m *mockOrganizationService) GetAll(ctx context.Context) ([]model.Organization, error) {
	return m.list, m.err
}

func (m *mockOrganizationService) GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.org, nil
}

func (m *mockOrganizationService) Create(ctx context.Context, req dto.CreateOrganizationRequest) (*model.Organization, error) {
	m.createCalls++
	m.lastCreate = req
	if m.err != nil {
		return nil, m.err
	}
	return &model.Organization{Base: model.Base{ID: uuid.New()}, Name: req.Name, Country: req.Country}, nil
}

func (m *mockOrganizationService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrganizationRequest) (*model.Organization, error) {
	m.lastUpdate = req
	if m.err != nil {
		return nil, m.err
	}
	return m.org, nil
}

func (m *mockOrganizationService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.deleted, m.err
}

func (m *mockOrganizationService) GetPropertiesByOrganizationID(ctx context.Context, id uuid.UUID) ([]model.Property, error) {
	return m.properties, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupRouter mounts register under /api/v1/<path> behind the error handler
func setupRouter(path string, register func(*gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(testLogger()))
	register(r.Group("/api/v1" + path))
	return r
}

func doRequest(r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apperror.Error {
	t.Helper()
	var body apperror.Error
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to unmarshal error response: %v", err)
	}
	return body
}

func setupOrganizationRouter(svc *mockOrganizationService) *gin.Engine {
	controller := NewOrganizationController(svc, testLogger())
	return setupRouter("/organizations", controller.Register)
}

func TestCreateOrganization_Success(t *testing.T) {
	svc := &mockOrganizationService{}
	router := setupOrganizationRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/v1/organizations", `{"name":"Acme","country":"US"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status code %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var response struct {
		Organization model.Organization `json:"organization"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Organization.Name != "Acme" || response.Organization.Country != "US" {
		t.Errorf("Unexpected organization %+v", response.Organization)
	}
	if response.Organization.ID == uuid.Nil {
		t.Errorf("Expected a generated id")
	}
}

func TestCreateOrganization_MissingBoth(t *testing.T) {
	svc := &mockOrganizationService{}
	router := setupOrganizationRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/v1/organizations", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, w.Code)
	}
	if body := decodeError(t, w); body.Message != "Bad Request" {
		t.Errorf("Expected message %q, got %q", "Bad Request", body.Message)
	}
	if svc.createCalls != 0 {
		t.Errorf("Service should not be called")
	}
}

func TestCreateOrganization_MissingOne(t *testing.T) {
	svc := &mockOrganizationService{}
	router := setupOrganizationRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/v1/organizations", `{"name":"Acme"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, w.Code)
	}
	body := decodeError(t, w)
	if body.Fields["country"] != "required" {
		t.Errorf("Expected country to be reported as required, got %v", body.Fields)
	}
	if svc.createCalls != 0 {
		t.Errorf("Service should not be called")
	}
}

func TestCreateOrganization_InvalidJSON(t *testing.T) {
	router := setupOrganizationRouter(&mockOrganizationService{})

	w := doRequest(router, http.MethodPost, "/api/v1/organizations", `{"name":`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestGetOrganization_InvalidID(t *testing.T) {
	router := setupOrganizationRouter(&mockOrganizationService{})

	w := doRequest(router, http.MethodGet, "/api/v1/organizations/not-a-uuid", "")

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestGetOrganization_NotFound(t *testing.T) {
	router := setupOrganizationRouter(&mockOrganizationService{err: apperror.NotFound("Organization")})

	w := doRequest(router, http.MethodGet, "/api/v1/organizations/"+uuid.NewString(), "")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, w.Code)
	}
	if body := decodeError(t, w); body.Message != "Organization not found" {
		t.Errorf("Unexpected message %q", body.Message)
	}
}

func TestGetOrganizations_ServiceError(t *testing.T) {
	router := setupOrganizationRouter(&mockOrganizationService{err: errors.New("database connection failed")})

	w := doRequest(router, http.MethodGet, "/api/v1/organizations", "")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status code %d, got %d", http.StatusInternalServerError, w.Code)
	}
	if strings.Contains(w.Body.String(), "database connection failed") {
		t.Errorf("Internal error leaked to client: %s", w.Body.String())
	}
}

func TestGetOrganizations_Success(t *testing.T) {
	svc := &mockOrganizationService{list: []model.Organization{{Name: "A"}, {Name: "B"}}}
	router := setupOrganizationRouter(svc)

	w := doRequest(router, http.MethodGet, "/api/v1/organizations", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}
	var list []model.Organization
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("Expected 2 organizations, got %d", len(list))
	}
}

func TestUpdateOrganization_PartialPayload(t *testing.T) {
	svc := &mockOrganizationService{org: &model.Organization{Name: "Acme", Country: "CA"}}
	router := setupOrganizationRouter(svc)

	w := doRequest(router, http.MethodPut, "/api/v1/organizations/"+uuid.NewString(), `{"country":"CA"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}
	if svc.lastUpdate.Name != nil {
		t.Errorf("Expected name to be absent from the update")
	}
	if svc.lastUpdate.Country == nil || *svc.lastUpdate.Country != "CA" {
		t.Errorf("Expected country CA, got %v", svc.lastUpdate.Country)
	}
	if !strings.Contains(w.Body.String(), `"organization"`) {
		t.Errorf("Expected organization envelope, got %s", w.Body.String())
	}
}

func TestUpdateOrganization_RejectsEmptyName(t *testing.T) {
	router := setupOrganizationRouter(&mockOrganizationService{})

	w := doRequest(router, http.MethodPut, "/api/v1/organizations/"+uuid.NewString(), `{"name":""}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestDeleteOrganization(t *testing.T) {
	for _, deleted := range []bool{true, false} {
		router := setupOrganizationRouter(&mockOrganizationService{deleted: deleted})

		w := doRequest(router, http.MethodDelete, "/api/v1/organizations/"+uuid.NewString(), "")

		if w.Code != http.StatusOK {
			t.Errorf("Expected status code %d, got %d", http.StatusOK, w.Code)
		}
		var response map[string]bool
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["status"] != deleted {
			t.Errorf("Expected status %v, got %v", deleted, response["status"])
		}
	}
}

func TestGetOrganizationProperties(t *testing.T) {
	orgID := uuid.New()
	svc := &mockOrganizationService{properties: []model.Property{{OrganizationID: orgID, Name: "North"}}}
	router := setupOrganizationRouter(svc)

	w := doRequest(router, http.MethodGet, "/api/v1/organizations/"+orgID.String()+"/properties", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}
	var response struct {
		Properties []model.Property `json:"properties"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Properties) != 1 || response.Properties[0].Name != "North" {
		t.Errorf("Unexpected properties %+v", response.Properties)
	}
}
