package models

// ReductionReport summarizes one reduction run. The pipeline returns it
// instead of printing, so the CLI and the HTTP API each render it their own
// way.
type ReductionReport struct {
	OriginalNodes int      `json:"original_nodes"`
	OriginalEdges int      `json:"original_edges"`
	SelectedNodes int      `json:"selected_nodes"`
	RetainedEdges int      `json:"retained_edges"`
	Density       float64  `json:"density"`
	NodesKeptPct  float64  `json:"nodes_kept_pct"`
	Messages      []string `json:"messages,omitempty"`
}
