package streetgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0, HaversineDistance(24.7841, -107.3866, 24.7841, -107.3866), 1e-9)
}

func TestHaversineSymmetry(t *testing.T) {
	d1 := HaversineDistance(24.7841, -107.3866, 25.0, -107.0)
	d2 := HaversineDistance(25.0, -107.0, 24.7841, -107.3866)
	assert.InDelta(t, d1, d2, 1e-6)
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of latitude on a 6371km sphere is about 111.195 km.
	d := HaversineDistance(0, 0, 1, 0)
	assert.InDelta(t, 111194.93, d, 1.0)
}

func TestHaversineMonotonicWithSeparation(t *testing.T) {
	near := HaversineDistance(0, 0, 0, 0.01)
	mid := HaversineDistance(0, 0, 0, 0.02)
	far := HaversineDistance(0, 0, 10, 10)
	assert.Less(t, near, mid)
	assert.Less(t, mid, far)
}
