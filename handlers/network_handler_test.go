package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"street-network-server/models"
	"street-network-server/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	datasets := map[string]models.Dataset{
		"centro": {
			Description: "test network",
			Nodes: []models.Node{
				{ID: 1, Lat: 0, Lon: 0, Type: "intersection", StreetNames: []string{}},
				{ID: 2, Lat: 0, Lon: 0.01, Type: "intersection", StreetNames: []string{}},
				{ID: 3, Lat: 10, Lon: 10, Type: "intersection", StreetNames: []string{}},
			},
			Edges: []models.Edge{
				{From: 1, To: 2, Weight: 1100},
				{From: 2, To: 3, Weight: 1500000},
			},
			Metadata: models.Metadata{TotalNodes: 3, TotalEdges: 2},
		},
	}

	handler := NewNetworkHandler(datasets, services.NewSamplingService(), services.NewPlannerService(""))
	r := gin.New()
	handler.RegisterRoutes(r)
	return r
}

func TestListNetworks(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/networks", nil)
	testRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count    int `json:"count"`
		Networks []struct {
			Name       string `json:"name"`
			TotalNodes int    `json:"total_nodes"`
		} `json:"networks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "centro", body.Networks[0].Name)
	assert.Equal(t, 3, body.Networks[0].TotalNodes)
}

func TestGetNetworkNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/networks/nope", nil)
	testRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSampleNetwork(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/networks/centro/sample",
		strings.NewReader(`{"max_nodes": 2, "seed": 7}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ReducedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Dataset.Nodes, 2)
	assert.Equal(t, 2, resp.Dataset.Metadata.TotalNodes)
	assert.Equal(t, 3, resp.Report.OriginalNodes)

	ids := make(map[int64]bool)
	for _, node := range resp.Dataset.Nodes {
		ids[node.ID] = true
	}
	for _, edge := range resp.Dataset.Edges {
		assert.True(t, ids[edge.From] && ids[edge.To])
	}
}

func TestSampleNetworkRejectsBadMaxNodes(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/networks/centro/sample",
		strings.NewReader(`{"max_nodes": -3}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeoFilterNetwork(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/networks/centro/geofilter",
		strings.NewReader(`{"center_lat": 0, "center_lon": 0, "radius_km": 5}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ReducedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Dataset.Nodes, 2)
	assert.Len(t, resp.Dataset.Edges, 1)
	require.NotNil(t, resp.Dataset.Metadata.RadiusKm)
	assert.InDelta(t, 5, *resp.Dataset.Metadata.RadiusKm, 1e-9)
}

func TestGeoFilterNetworkRejectsNegativeRadius(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/networks/centro/geofilter",
		strings.NewReader(`{"center_lat": 0, "center_lon": 0, "radius_km": -2}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
