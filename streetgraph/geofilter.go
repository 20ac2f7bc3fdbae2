package streetgraph

import (
	"fmt"
	"math"

	"street-network-server/models"
)

// RadiusFilter keeps every node within RadiusKm of the center point,
// boundary included. The result follows input order.
type RadiusFilter struct {
	CenterLat float64
	CenterLon float64
	RadiusKm  float64
}

// NewRadiusFilter validates the parameters up front. A zero radius is
// allowed and selects only nodes coincident with the center.
func NewRadiusFilter(centerLat, centerLon, radiusKm float64) (*RadiusFilter, error) {
	if math.IsNaN(radiusKm) || radiusKm < 0 {
		return nil, fmt.Errorf("%w: radius must be non-negative, got %v", ErrConfig, radiusKm)
	}
	if math.IsNaN(centerLat) || centerLat < -90 || centerLat > 90 {
		return nil, fmt.Errorf("%w: center latitude out of range: %v", ErrConfig, centerLat)
	}
	if math.IsNaN(centerLon) || centerLon < -180 || centerLon > 180 {
		return nil, fmt.Errorf("%w: center longitude out of range: %v", ErrConfig, centerLon)
	}
	return &RadiusFilter{CenterLat: centerLat, CenterLon: centerLon, RadiusKm: radiusKm}, nil
}

func (f *RadiusFilter) Select(nodes []models.Node) ([]models.Node, map[int64]bool) {
	radiusMeters := f.RadiusKm * 1000

	selected := make([]models.Node, 0)
	ids := make(map[int64]bool)
	for _, node := range nodes {
		if HaversineDistance(f.CenterLat, f.CenterLon, node.Lat, node.Lon) <= radiusMeters {
			selected = append(selected, node)
			ids[node.ID] = true
		}
	}
	return selected, ids
}

func (f *RadiusFilter) Describe() string {
	return fmt.Sprintf("Street subset centered at (%g, %g) within %gkm", f.CenterLat, f.CenterLon, f.RadiusKm)
}

func (f *RadiusFilter) Annotate(meta *models.Metadata) {
	centerLat, centerLon, radiusKm := f.CenterLat, f.CenterLon, f.RadiusKm
	meta.CenterLat = &centerLat
	meta.CenterLon = &centerLon
	meta.RadiusKm = &radiusKm
}
