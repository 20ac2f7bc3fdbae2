package streetgraph

import (
	"encoding/json"
	"fmt"
	"os"

	"street-network-server/models"
)

// WriteDataset serializes ds to path, overwriting any previous file. Field
// order is fixed by the struct layout; city and street names keep their
// non-ASCII characters as written. Empty node/edge lists come out as [] so
// the document stays well-formed for downstream loaders.
func WriteDataset(ds models.Dataset, path string) error {
	if ds.Nodes == nil {
		ds.Nodes = make([]models.Node, 0)
	}
	if ds.Edges == nil {
		ds.Edges = make([]models.Edge, 0)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file %s: %w", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&ds); err != nil {
		return fmt.Errorf("could not write dataset to %s: %w", path, err)
	}
	return nil
}
