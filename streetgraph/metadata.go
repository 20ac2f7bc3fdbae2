package streetgraph

import "street-network-server/models"

// AnnotateMetadata rebuilds the summary record for a reduced dataset. Counts
// and density come from the reduced lists, never from the original; the
// static fields (city, source, extraction date, network type) carry over
// unchanged, and the selector records the parameters of the run.
func AnnotateMetadata(original models.Dataset, nodes []models.Node, edges []models.Edge, sel NodeSelector) models.Metadata {
	meta := models.Metadata{
		City:          original.Metadata.City,
		Source:        original.Metadata.Source,
		ExtractedDate: original.Metadata.ExtractedDate,
		NetworkType:   original.Metadata.NetworkType,
		Simplified:    original.Metadata.Simplified,
		TotalNodes:    len(nodes),
		TotalEdges:    len(edges),
		Density:       Density(len(nodes), len(edges)),
	}

	originalNodes := len(original.Nodes)
	originalEdges := len(original.Edges)
	meta.OriginalNodes = &originalNodes
	meta.OriginalEdges = &originalEdges

	sel.Annotate(&meta)
	return meta
}

// Density is edges per node. An empty node set reports 0 instead of dividing
// by zero.
func Density(nodes, edges int) float64 {
	if nodes == 0 {
		return 0
	}
	return float64(edges) / float64(nodes)
}
