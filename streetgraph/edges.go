package streetgraph

import "street-network-server/models"

// FilterEdges keeps only edges whose endpoints are both in the selected id
// set. This restores referential consistency after any node subsetting: an
// edge with a dangling endpoint is dropped, never kept half-connected.
func FilterEdges(edges []models.Edge, selectedIDs map[int64]bool) []models.Edge {
	kept := make([]models.Edge, 0)
	for _, edge := range edges {
		if selectedIDs[edge.From] && selectedIDs[edge.To] {
			kept = append(kept, edge)
		}
	}
	return kept
}
