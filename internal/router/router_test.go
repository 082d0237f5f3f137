package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agro-registry/internal/config"
	"agro-registry/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t      *testing.T
	engine *gin.Engine
}

func newClient(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Env: "test", CORSOrigins: []string{"*"}}
	return &client{t: t, engine: New(cfg, testutil.NewDB(t), testutil.Logger())}
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)
	return w
}

// create posts body and returns the record found under key
func (c *client) create(path, key string, body any) map[string]any {
	c.t.Helper()
	w := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())

	var envelope map[string]map[string]any
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &envelope))
	rec, ok := envelope[key]
	require.True(c.t, ok, "missing %q in %s", key, w.Body.String())
	return rec
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

var square = map[string]any{
	"type":        "Polygon",
	"coordinates": [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
}

func TestRouter_EndToEnd(t *testing.T) {
	c := newClient(t)

	org := c.create("/api/v1/organizations", "organization", map[string]any{"name": "Acme", "country": "US"})
	orgID := org["id"].(string)

	got := decode[map[string]any](t, c.do(http.MethodGet, "/api/v1/organizations/"+orgID, nil))
	assert.Equal(t, "Acme", got["name"])
	assert.Equal(t, "US", got["country"])

	prop := c.create("/api/v1/properties", "property", map[string]any{"organizationId": orgID, "name": "North"})
	propID := prop["id"].(string)

	root := c.create("/api/v1/regions", "region", map[string]any{
		"propertyId": propID, "name": "Root", "geometry": "POLYGON((0 0,4 0,4 4,0 0))", "area": 16,
	})
	rootID := root["id"].(string)
	sub := c.create("/api/v1/regions", "region", map[string]any{
		"propertyId": propID, "parentRegionId": rootID, "name": "Sub", "geometry": square, "area": 1,
	})
	subID := sub["id"].(string)

	geom := sub["geometry"].(map[string]any)
	assert.Equal(t, "Polygon", geom["type"])

	field := c.create("/api/v1/fields", "field", map[string]any{
		"regionId": subID, "name": "F1", "geometry": square, "area": 0.5,
	})
	fieldID := field["id"].(string)

	crop := c.create("/api/v1/crops", "crop", map[string]any{"name": "Corn", "type": "Grain"})
	cropID := crop["id"].(string)

	cycle := c.create("/api/v1/crop-cycles", "cropCycle", map[string]any{
		"name": "Spring", "cropId": cropID, "fieldId": fieldID,
		"plantingDate": "2025-03-01", "harvestDate": "2025-08-01",
	})
	assert.Equal(t, "2025-03-01T00:00:00Z", cycle["plantingDate"])

	t.Run("property listing joins organization", func(t *testing.T) {
		list := decode[[]map[string]any](t, c.do(http.MethodGet, "/api/v1/properties", nil))
		require.Len(t, list, 1)
		assert.Equal(t, map[string]any{"id": orgID, "name": "Acme"}, list[0]["organization"])
	})

	t.Run("organization properties", func(t *testing.T) {
		resp := decode[map[string][]map[string]any](t, c.do(http.MethodGet, "/api/v1/organizations/"+orgID+"/properties", nil))
		require.Len(t, resp["properties"], 1)
		assert.Equal(t, propID, resp["properties"][0]["id"])

		filtered := decode[[]map[string]any](t, c.do(http.MethodGet, "/api/v1/properties?organizationId="+orgID, nil))
		assert.Len(t, filtered, 1)
	})

	t.Run("region listing joins hierarchy", func(t *testing.T) {
		list := decode[[]map[string]any](t, c.do(http.MethodGet, "/api/v1/regions", nil))
		require.Len(t, list, 2)
		byID := map[string]map[string]any{}
		for _, r := range list {
			byID[r["id"].(string)] = r
		}
		subRegions := byID[rootID]["subRegions"].([]any)
		require.Len(t, subRegions, 1)
		assert.Equal(t, subID, subRegions[0].(map[string]any)["id"])
		assert.Equal(t, map[string]any{"id": rootID, "name": "Root"}, byID[subID]["parentRegion"])
	})

	t.Run("crop cycle listing joins crop and field", func(t *testing.T) {
		list := decode[[]map[string]any](t, c.do(http.MethodGet, "/api/v1/crop-cycles", nil))
		require.Len(t, list, 1)
		assert.Equal(t, map[string]any{"id": cropID, "name": "Corn"}, list[0]["crop"])
		assert.Equal(t, map[string]any{"id": fieldID, "name": "F1"}, list[0]["field"])
		assert.NotContains(t, list[0], "property")
	})

	t.Run("region cycle rejected", func(t *testing.T) {
		w := c.do(http.MethodPut, "/api/v1/regions/"+rootID, map[string]any{"parentRegionId": subID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("crop cycle needs exactly one target", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/crop-cycles", map[string]any{
			"name": "Both", "cropId": cropID, "fieldId": fieldID, "propertyId": propID,
			"plantingDate": "2025-03-01", "harvestDate": "2025-08-01",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Either fieldId or propertyId must be provided")
	})

	t.Run("invalid crop type", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/crops", map[string]any{"name": "Rose", "type": "Flower"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[map[string]any](t, w)
		assert.Equal(t, map[string]any{"type": "oneof"}, resp["fields"])
	})

	t.Run("invalid geometry", func(t *testing.T) {
		w := c.do(http.MethodPost, "/api/v1/fields", map[string]any{
			"regionId": subID, "name": "Bad", "geometry": "not wkt", "area": 1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("partial update", func(t *testing.T) {
		w := c.do(http.MethodPut, "/api/v1/organizations/"+orgID, map[string]any{"country": "CA"})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[map[string]map[string]any](t, w)
		assert.Equal(t, "Acme", resp["organization"]["name"])
		assert.Equal(t, "CA", resp["organization"]["country"])
	})

	t.Run("delete", func(t *testing.T) {
		w := c.do(http.MethodDelete, "/api/v1/crops/"+cropID, nil)
		assert.Equal(t, map[string]bool{"status": true}, decode[map[string]bool](t, w))

		w = c.do(http.MethodDelete, "/api/v1/crops/"+cropID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]bool{"status": false}, decode[map[string]bool](t, w))

		w = c.do(http.MethodGet, "/api/v1/crops/"+cropID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"ok": true, "db": "connected"}, decode[map[string]any](t, w))

	c.do(http.MethodGet, "/api/v1/crops", nil)
	w = c.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/v1/crops"`)
	assert.Contains(t, w.Body.String(), `db_name="agro"`)
}

func TestRouter_MalformedID(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{
		"/api/v1/organizations/123",
		"/api/v1/properties/abc",
		"/api/v1/regions/abc",
		"/api/v1/fields/abc",
		"/api/v1/crops/abc",
		"/api/v1/crop-cycles/abc",
	} {
		w := c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}
