package streetgraph

import "street-network-server/models"

// NodeSelector is a selection policy: it picks a node subset from the full
// node list and reports the picked ids as a set, so the edge filter gets O(1)
// membership tests. Implementations never modify the input slice.
type NodeSelector interface {
	Select(nodes []models.Node) ([]models.Node, map[int64]bool)

	// Describe returns a one-line summary used as the reduced dataset's
	// description.
	Describe() string

	// Annotate records the selection parameters on the reduced metadata.
	Annotate(meta *models.Metadata)
}
