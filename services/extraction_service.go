package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"street-network-server/models"
	"street-network-server/streetgraph"
	"street-network-server/utils"
)

// RawNode and RawEdge are the record shapes a GraphSource must supply. The
// pipeline only ever depends on these, never on the source's own graph
// representation.
type RawNode struct {
	ID        int64
	Lat       float64
	Lon       float64
	Elevation *float64
}

type RawEdge struct {
	From        int64
	To          int64
	Length      float64
	Name        interface{}
	HighwayType interface{}
	OneWay      interface{}
	MaxSpeed    interface{}
}

type RawNetwork struct {
	Nodes []RawNode
	Edges []RawEdge
}

// SimplificationStatus reports how a simplification pass went. A network
// that is already simplified is a normal outcome, not an error.
type SimplificationStatus int

const (
	Simplified SimplificationStatus = iota
	AlreadySimplified
)

type SimplificationResult struct {
	Status  SimplificationStatus
	Network RawNetwork
}

// GraphSource supplies raw street-network records for a named place or a
// point+radius query.
type GraphSource interface {
	FetchPlace(ctx context.Context, place, networkType string) (RawNetwork, error)
	FetchPoint(ctx context.Context, lat, lon, radiusKm float64, networkType string) (RawNetwork, error)
	Simplify(network RawNetwork) SimplificationResult
}

// OverpassSource fetches road networks from the Overpass API.
type OverpassSource struct {
	baseURL    string
	httpClient *http.Client
}

func NewOverpassSource() *OverpassSource {
	return &OverpassSource{
		baseURL: "https://overpass-api.de/api/interpreter",
		httpClient: &http.Client{
			Timeout: 90 * time.Second, // area extractions are slow
		},
	}
}

// NewOverpassSourceWithURL points the source at a specific Overpass endpoint.
func NewOverpassSourceWithURL(baseURL string) *OverpassSource {
	src := NewOverpassSource()
	src.baseURL = baseURL
	return src
}

type overpassElement struct {
	Type  string                 `json:"type"`
	ID    int64                  `json:"id"`
	Lat   float64                `json:"lat"`
	Lon   float64                `json:"lon"`
	Nodes []int64                `json:"nodes"`
	Tags  map[string]interface{} `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

func (s *OverpassSource) FetchPlace(ctx context.Context, place, networkType string) (RawNetwork, error) {
	query := fmt.Sprintf(`[out:json][timeout:60];
area["name"=%q]->.searchArea;
way["highway"]%s(area.searchArea);
(._;>;);
out body;`, place, highwayFilter(networkType))
	return s.runQuery(ctx, query)
}

func (s *OverpassSource) FetchPoint(ctx context.Context, lat, lon, radiusKm float64, networkType string) (RawNetwork, error) {
	query := fmt.Sprintf(`[out:json][timeout:60];
way["highway"]%s(around:%.0f,%.6f,%.6f);
(._;>;);
out body;`, highwayFilter(networkType), radiusKm*1000, lat, lon)
	return s.runQuery(ctx, query)
}

// highwayFilter narrows the way query the way the OSMnx network types do.
func highwayFilter(networkType string) string {
	switch networkType {
	case "walk":
		return `["highway"!~"motorway|motorway_link"]`
	case "bike":
		return `["highway"!~"motorway|motorway_link|footway|steps"]`
	default: // drive
		return `["highway"!~"footway|path|cycleway|pedestrian|steps|corridor|track"]`
	}
}

func (s *OverpassSource) runQuery(ctx context.Context, query string) (RawNetwork, error) {
	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return RawNetwork{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return RawNetwork{}, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RawNetwork{}, fmt.Errorf("overpass request failed with status: %s", resp.Status)
	}

	var overpass overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpass); err != nil {
		return RawNetwork{}, fmt.Errorf("could not parse overpass response: %w", err)
	}

	return buildNetwork(overpass), nil
}

// buildNetwork turns Overpass elements into raw records: every way becomes a
// chain of directed segments between its consecutive nodes, with a reverse
// segment unless the way is tagged one-way.
func buildNetwork(overpass overpassResponse) RawNetwork {
	nodesByID := make(map[int64]RawNode)
	var ways []overpassElement
	for _, el := range overpass.Elements {
		switch el.Type {
		case "node":
			nodesByID[el.ID] = RawNode{ID: el.ID, Lat: el.Lat, Lon: el.Lon}
		case "way":
			ways = append(ways, el)
		}
	}

	var network RawNetwork
	used := make(map[int64]bool)
	for _, way := range ways {
		for i := 0; i+1 < len(way.Nodes); i++ {
			from, ok := nodesByID[way.Nodes[i]]
			if !ok {
				continue
			}
			to, ok := nodesByID[way.Nodes[i+1]]
			if !ok {
				continue
			}
			length := streetgraph.HaversineDistance(from.Lat, from.Lon, to.Lat, to.Lon)
			edge := RawEdge{
				From:        from.ID,
				To:          to.ID,
				Length:      length,
				Name:        way.Tags["name"],
				HighwayType: way.Tags["highway"],
				OneWay:      way.Tags["oneway"],
				MaxSpeed:    way.Tags["maxspeed"],
			}
			network.Edges = append(network.Edges, edge)
			if !utils.ParseOneWay(way.Tags["oneway"]) {
				reverse := edge
				reverse.From, reverse.To = edge.To, edge.From
				network.Edges = append(network.Edges, reverse)
			}
			used[from.ID] = true
			used[to.ID] = true
		}
	}

	for id, node := range nodesByID {
		if used[id] {
			network.Nodes = append(network.Nodes, node)
		}
	}
	return network
}

// Simplify collapses pass-through nodes (exactly one incoming and one
// outgoing segment) into longer edges, summing segment lengths. If no node
// can be collapsed the network was already simplified, which is reported as
// a status rather than a failure.
func (s *OverpassSource) Simplify(network RawNetwork) SimplificationResult {
	incoming := make(map[int64][]RawEdge)
	outgoing := make(map[int64][]RawEdge)
	for _, e := range network.Edges {
		outgoing[e.From] = append(outgoing[e.From], e)
		incoming[e.To] = append(incoming[e.To], e)
	}

	passThrough := make(map[int64]bool)
	for _, n := range network.Nodes {
		in, out := incoming[n.ID], outgoing[n.ID]
		if len(in) == 1 && len(out) == 1 &&
			in[0].From != n.ID && out[0].To != n.ID && in[0].From != out[0].To {
			passThrough[n.ID] = true
		}
	}
	if len(passThrough) == 0 {
		return SimplificationResult{Status: AlreadySimplified, Network: network}
	}

	simplified := RawNetwork{}
	for _, n := range network.Nodes {
		if !passThrough[n.ID] {
			simplified.Nodes = append(simplified.Nodes, n)
		}
	}
	for _, e := range network.Edges {
		if passThrough[e.From] {
			continue // will be absorbed into the chain starting upstream
		}
		merged := e
		// Follow the chain through pass-through nodes; the step bound
		// guards against all-pass-through cycles.
		for steps := 0; passThrough[merged.To] && steps < len(network.Edges); steps++ {
			next := outgoing[merged.To][0]
			merged.To = next.To
			merged.Length += next.Length
		}
		if passThrough[merged.To] {
			continue
		}
		simplified.Edges = append(simplified.Edges, merged)
	}
	return SimplificationResult{Status: Simplified, Network: simplified}
}

// BuildDataset assembles a dataset document from raw records, applying the
// defaults used for incomplete map data.
func BuildDataset(network RawNetwork, city, networkType string) models.Dataset {
	nodes := make([]models.Node, 0, len(network.Nodes))
	for _, rn := range network.Nodes {
		nodes = append(nodes, models.Node{
			ID:          rn.ID,
			Lat:         rn.Lat,
			Lon:         rn.Lon,
			Elevation:   rn.Elevation,
			Type:        "intersection",
			StreetNames: []string{},
		})
	}

	edges := make([]models.Edge, 0, len(network.Edges))
	for _, re := range network.Edges {
		edges = append(edges, models.Edge{
			From:       re.From,
			To:         re.To,
			Weight:     re.Length,
			StreetName: utils.ParseName(re.Name, "Sin nombre"),
			StreetType: utils.ParseName(re.HighwayType, "unknown"),
			OneWay:     utils.ParseOneWay(re.OneWay),
			MaxSpeed:   utils.ParseSpeed(re.MaxSpeed, streetgraph.DefaultMaxSpeed),
		})
	}

	return models.Dataset{
		Description: fmt.Sprintf("Street network of %s extracted from OpenStreetMap", city),
		Nodes:       nodes,
		Edges:       edges,
		Metadata: models.Metadata{
			City:          city,
			Source:        "OpenStreetMap via Overpass API",
			ExtractedDate: time.Now().Format("2006-01-02"),
			TotalNodes:    len(nodes),
			TotalEdges:    len(edges),
			NetworkType:   networkType,
			Simplified:    true,
			Density:       streetgraph.Density(len(nodes), len(edges)),
		},
	}
}
