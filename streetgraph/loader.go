package streetgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"street-network-server/models"
	"street-network-server/utils"
)

// DefaultMaxSpeed is applied when the source data has no usable maxspeed tag.
const DefaultMaxSpeed = 50.0

// Edges arrive with whatever field shapes the upstream extractor produced, so
// the tag-like fields stay untyped here and get normalized below.
type rawEdge struct {
	From       int64       `json:"from"`
	To         int64       `json:"to"`
	Weight     float64     `json:"weight"`
	StreetName interface{} `json:"street_name"`
	StreetType interface{} `json:"street_type"`
	OneWay     interface{} `json:"one_way"`
	MaxSpeed   interface{} `json:"max_speed"`
}

type rawDataset struct {
	Description string          `json:"description"`
	Nodes       json.RawMessage `json:"nodes"`
	Edges       json.RawMessage `json:"edges"`
	Metadata    models.Metadata `json:"metadata"`
}

// LoadDataset reads a street-network dataset from path. The top-level nodes
// and edges lists must be present and list-shaped; per-record optional fields
// are parsed leniently and left to consumers to judge.
func LoadDataset(path string) (models.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("could not read dataset file: %w", err)
	}
	ds, err := ParseDataset(data)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// ParseDataset decodes a dataset document from raw JSON.
func ParseDataset(data []byte) (models.Dataset, error) {
	var raw rawDataset
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if isAbsent(raw.Nodes) {
		return models.Dataset{}, fmt.Errorf("%w: missing \"nodes\" list", ErrFormat)
	}
	if isAbsent(raw.Edges) {
		return models.Dataset{}, fmt.Errorf("%w: missing \"edges\" list", ErrFormat)
	}

	var nodes []models.Node
	if err := json.Unmarshal(raw.Nodes, &nodes); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: \"nodes\" is not a node list: %v", ErrFormat, err)
	}
	var rawEdges []rawEdge
	if err := json.Unmarshal(raw.Edges, &rawEdges); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: \"edges\" is not an edge list: %v", ErrFormat, err)
	}

	if nodes == nil {
		nodes = make([]models.Node, 0)
	}
	for i := range nodes {
		if nodes[i].StreetNames == nil {
			nodes[i].StreetNames = []string{}
		}
	}

	edges := make([]models.Edge, 0, len(rawEdges))
	for _, e := range rawEdges {
		edges = append(edges, models.Edge{
			From:       e.From,
			To:         e.To,
			Weight:     e.Weight,
			StreetName: utils.ParseName(e.StreetName, "Sin nombre"),
			StreetType: utils.ParseName(e.StreetType, "unknown"),
			OneWay:     utils.ParseOneWay(e.OneWay),
			MaxSpeed:   utils.ParseSpeed(e.MaxSpeed, DefaultMaxSpeed),
		})
	}

	return models.Dataset{
		Description: raw.Description,
		Nodes:       nodes,
		Edges:       edges,
		Metadata:    raw.Metadata,
	}, nil
}

// LoadDatasetsFromDirectory loads every .json dataset under folder, keyed by
// file name without the extension.
func LoadDatasetsFromDirectory(folder string) (map[string]models.Dataset, error) {
	datasets := make(map[string]models.Dataset)

	err := filepath.Walk(folder, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".json") {
			ds, err := LoadDataset(path)
			if err != nil {
				return fmt.Errorf("error loading dataset from %s: %w", path, err)
			}
			key := strings.TrimSuffix(info.Name(), ".json")
			datasets[key] = ds
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return datasets, nil
}

func isAbsent(raw json.RawMessage) bool {
	return raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
