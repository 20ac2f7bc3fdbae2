package models

// Node represents a point in the street network, typically an intersection.
// IDs come straight from the upstream map data and can be large 64-bit values.
type Node struct {
	ID          int64    `json:"id"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Elevation   *float64 `json:"elevation,omitempty"`
	Type        string   `json:"type"`
	StreetNames []string `json:"street_names"`
}

// Edge represents a directed road segment between two nodes.
type Edge struct {
	From       int64   `json:"from"`
	To         int64   `json:"to"`
	Weight     float64 `json:"weight"` // length in meters
	StreetName string  `json:"street_name"`
	StreetType string  `json:"street_type"`
	OneWay     bool    `json:"one_way"`
	MaxSpeed   float64 `json:"max_speed"` // km/h
}

// Metadata carries the summary record stored alongside a dataset. TotalNodes,
// TotalEdges and Density are derived from the node/edge lists, never set by
// hand. The pointer fields record the selection parameters of the run that
// produced the dataset and are only present on reduced datasets.
type Metadata struct {
	City          string   `json:"city,omitempty"`
	Source        string   `json:"source,omitempty"`
	ExtractedDate string   `json:"extracted_date,omitempty"`
	TotalNodes    int      `json:"total_nodes"`
	TotalEdges    int      `json:"total_edges"`
	NetworkType   string   `json:"network_type,omitempty"`
	Simplified    bool     `json:"simplified,omitempty"`
	Density       float64  `json:"density"` // edges per node
	SampleSize    *int     `json:"sample_size,omitempty"`
	OriginalNodes *int     `json:"original_nodes,omitempty"`
	OriginalEdges *int     `json:"original_edges,omitempty"`
	CenterLat     *float64 `json:"center_lat,omitempty"`
	CenterLon     *float64 `json:"center_lon,omitempty"`
	RadiusKm      *float64 `json:"radius_km,omitempty"`
}

// Dataset is one self-contained street network document. Every edge endpoint
// must reference a node id present in Nodes; the reduction pipeline restores
// that invariant after any node subsetting.
type Dataset struct {
	Description string   `json:"description"`
	Nodes       []Node   `json:"nodes"`
	Edges       []Edge   `json:"edges"`
	Metadata    Metadata `json:"metadata"`
}
