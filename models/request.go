package models

// SampleRequest asks for a random node sample of a loaded network.
type SampleRequest struct {
	MaxNodes int   `json:"max_nodes" binding:"required"`
	Seed     int64 `json:"seed,omitempty"`
}

// GeoFilterRequest asks for the subset of a loaded network within RadiusKm of
// a center point. Zero is a valid latitude/longitude, so no binding:required
// here; range checks happen when the filter is constructed.
type GeoFilterRequest struct {
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
	RadiusKm  float64 `json:"radius_km"`
}

// AlgorithmRequest is forwarded as-is to the path-finding backend.
type AlgorithmRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	Start     int64  `json:"start"`
	Target    int64  `json:"target"`
}

// ReducedResponse pairs a reduced dataset with the report of the run that
// produced it.
type ReducedResponse struct {
	Dataset Dataset         `json:"dataset"`
	Report  ReductionReport `json:"report"`
}
