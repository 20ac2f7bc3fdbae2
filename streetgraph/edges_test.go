package streetgraph

import (
	"testing"

	"street-network-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEdgesDropsDanglingEndpoints(t *testing.T) {
	edges := []models.Edge{
		{From: 1, To: 2, Weight: 100},
		{From: 2, To: 3, Weight: 200},
	}
	selected := map[int64]bool{1: true, 2: true}

	kept := FilterEdges(edges, selected)

	require.Len(t, kept, 1)
	assert.Equal(t, int64(1), kept[0].From)
	assert.Equal(t, int64(2), kept[0].To)
}

func TestFilterEdgesRequiresBothEndpoints(t *testing.T) {
	edges := []models.Edge{
		{From: 1, To: 9},
		{From: 9, To: 1},
		{From: 9, To: 9},
	}
	kept := FilterEdges(edges, map[int64]bool{1: true})
	assert.Empty(t, kept)
}

func TestFilterEdgesEmptySelection(t *testing.T) {
	edges := []models.Edge{{From: 1, To: 2}}
	kept := FilterEdges(edges, map[int64]bool{})
	assert.NotNil(t, kept)
	assert.Empty(t, kept)
}
