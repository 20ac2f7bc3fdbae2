package handlers

import (
	"errors"
	"net/http"

	"street-network-server/models"
	"street-network-server/services"
	"street-network-server/streetgraph"

	"github.com/gin-gonic/gin"
)

// NetworkHandler exposes the loaded street networks and the reduction
// pipeline over HTTP. Reductions run on the in-memory datasets and return
// the reduced document; they never touch disk.
type NetworkHandler struct {
	datasets map[string]models.Dataset
	sampling *services.SamplingService
	planner  *services.PlannerService
}

func NewNetworkHandler(datasets map[string]models.Dataset, sampling *services.SamplingService, planner *services.PlannerService) *NetworkHandler {
	return &NetworkHandler{
		datasets: datasets,
		sampling: sampling,
		planner:  planner,
	}
}

func (h *NetworkHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/api/status", h.Status)
	r.GET("/api/networks", h.ListNetworks)
	r.GET("/api/networks/:name", h.GetNetwork)
	r.POST("/api/networks/:name/sample", h.SampleNetwork)
	r.POST("/api/networks/:name/geofilter", h.GeoFilterNetwork)
	r.POST("/api/algorithm/run", h.RunAlgorithm)
}

func (h *NetworkHandler) Status(c *gin.Context) {
	status := gin.H{
		"status":   "online",
		"networks": len(h.datasets),
	}
	if backend, err := h.planner.Status(c.Request.Context()); err == nil {
		status["backend"] = backend
	} else {
		status["backend"] = gin.H{"status": "offline"}
	}
	c.JSON(http.StatusOK, status)
}

func (h *NetworkHandler) ListNetworks(c *gin.Context) {
	summaries := make([]gin.H, 0, len(h.datasets))
	for name, ds := range h.datasets {
		summaries = append(summaries, gin.H{
			"name":        name,
			"description": ds.Description,
			"total_nodes": len(ds.Nodes),
			"total_edges": len(ds.Edges),
			"city":        ds.Metadata.City,
		})
	}
	c.JSON(http.StatusOK, gin.H{"networks": summaries, "count": len(summaries)})
}

func (h *NetworkHandler) GetNetwork(c *gin.Context) {
	ds, ok := h.datasets[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "network not found"})
		return
	}
	c.JSON(http.StatusOK, ds)
}

func (h *NetworkHandler) SampleNetwork(c *gin.Context) {
	ds, ok := h.datasets[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "network not found"})
		return
	}

	var req models.SampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sampler, err := streetgraph.NewRandomSampler(req.MaxNodes, req.Seed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reduced, report := h.sampling.Reduce(ds, sampler)
	c.JSON(http.StatusOK, models.ReducedResponse{Dataset: reduced, Report: report})
}

func (h *NetworkHandler) GeoFilterNetwork(c *gin.Context) {
	ds, ok := h.datasets[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "network not found"})
		return
	}

	var req models.GeoFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := streetgraph.NewRadiusFilter(req.CenterLat, req.CenterLon, req.RadiusKm)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, streetgraph.ErrConfig) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	reduced, report := h.sampling.Reduce(ds, filter)
	c.JSON(http.StatusOK, models.ReducedResponse{Dataset: reduced, Report: report})
}

func (h *NetworkHandler) RunAlgorithm(c *gin.Context) {
	var req models.AlgorithmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.planner.RunAlgorithm(c.Request.Context(), req.Algorithm, req.Start, req.Target)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
