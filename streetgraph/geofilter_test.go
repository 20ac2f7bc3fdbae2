package streetgraph

import (
	"testing"

	"street-network-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three intersections: two a kilometer or so apart near the origin, one far
// away.
func scenarioNodes() []models.Node {
	return []models.Node{
		{ID: 1, Lat: 0, Lon: 0},
		{ID: 2, Lat: 0, Lon: 0.01},
		{ID: 3, Lat: 10, Lon: 10},
	}
}

func TestRadiusFilterKeepsNearbyNodes(t *testing.T) {
	filter, err := NewRadiusFilter(0, 0, 5)
	require.NoError(t, err)

	selected, ids := filter.Select(scenarioNodes())

	require.Len(t, selected, 2)
	assert.True(t, ids[1])
	assert.True(t, ids[2])
	assert.False(t, ids[3])
}

func TestRadiusFilterPreservesInputOrder(t *testing.T) {
	filter, err := NewRadiusFilter(0, 0, 5)
	require.NoError(t, err)

	selected, _ := filter.Select(scenarioNodes())
	require.Len(t, selected, 2)
	assert.Equal(t, int64(1), selected[0].ID)
	assert.Equal(t, int64(2), selected[1].ID)
}

func TestRadiusFilterMonotonicInRadius(t *testing.T) {
	nodes := scenarioNodes()

	small, err := NewRadiusFilter(0, 0, 0.5)
	require.NoError(t, err)
	large, err := NewRadiusFilter(0, 0, 5)
	require.NoError(t, err)

	_, smallIDs := small.Select(nodes)
	_, largeIDs := large.Select(nodes)

	for id := range smallIDs {
		assert.True(t, largeIDs[id], "node %d selected at 0.5km but not at 5km", id)
	}
}

func TestRadiusFilterZeroRadiusSelectsCoincidentOnly(t *testing.T) {
	filter, err := NewRadiusFilter(0, 0, 0)
	require.NoError(t, err)

	selected, ids := filter.Select(scenarioNodes())
	require.Len(t, selected, 1)
	assert.True(t, ids[1])
}

func TestRadiusFilterRejectsBadParameters(t *testing.T) {
	_, err := NewRadiusFilter(0, 0, -1)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = NewRadiusFilter(95, 0, 1)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = NewRadiusFilter(0, 200, 1)
	assert.ErrorIs(t, err, ErrConfig)
}
