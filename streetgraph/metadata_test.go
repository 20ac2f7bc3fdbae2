package streetgraph

import (
	"testing"

	"street-network-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensity(t *testing.T) {
	assert.InDelta(t, 1.5, Density(4, 6), 1e-9)
	assert.Zero(t, Density(0, 10), "empty node set must not divide by zero")
}

func TestAnnotateMetadataDerivesCountsFromReducedLists(t *testing.T) {
	original := models.Dataset{
		Nodes: make([]models.Node, 8),
		Edges: make([]models.Edge, 12),
		Metadata: models.Metadata{
			City:          "Culiacán, Sinaloa, México",
			Source:        "OpenStreetMap",
			ExtractedDate: "2024-01-15",
			NetworkType:   "drive",
			TotalNodes:    8,
			TotalEdges:    12,
		},
	}
	nodes := make([]models.Node, 4)
	edges := make([]models.Edge, 6)

	sampler, err := NewRandomSampler(4, 42)
	require.NoError(t, err)

	meta := AnnotateMetadata(original, nodes, edges, sampler)

	assert.Equal(t, 4, meta.TotalNodes)
	assert.Equal(t, 6, meta.TotalEdges)
	assert.InDelta(t, 1.5, meta.Density, 1e-9)

	assert.Equal(t, "Culiacán, Sinaloa, México", meta.City)
	assert.Equal(t, "OpenStreetMap", meta.Source)
	assert.Equal(t, "2024-01-15", meta.ExtractedDate)
	assert.Equal(t, "drive", meta.NetworkType)

	require.NotNil(t, meta.SampleSize)
	assert.Equal(t, 4, *meta.SampleSize)
	require.NotNil(t, meta.OriginalNodes)
	assert.Equal(t, 8, *meta.OriginalNodes)
	require.NotNil(t, meta.OriginalEdges)
	assert.Equal(t, 12, *meta.OriginalEdges)
}

func TestAnnotateMetadataRecordsRadiusParameters(t *testing.T) {
	filter, err := NewRadiusFilter(24.7841, -107.3866, 2)
	require.NoError(t, err)

	meta := AnnotateMetadata(models.Dataset{}, nil, nil, filter)

	require.NotNil(t, meta.CenterLat)
	assert.InDelta(t, 24.7841, *meta.CenterLat, 1e-9)
	require.NotNil(t, meta.CenterLon)
	assert.InDelta(t, -107.3866, *meta.CenterLon, 1e-9)
	require.NotNil(t, meta.RadiusKm)
	assert.InDelta(t, 2, *meta.RadiusKm, 1e-9)
	assert.Nil(t, meta.SampleSize)
	assert.Zero(t, meta.Density)
}
