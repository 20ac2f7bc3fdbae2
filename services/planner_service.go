package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// PlannerService forwards commands to the external path-finding backend. No
// shortest-path logic lives in this repository; the backend owns it.
type PlannerService struct {
	baseURL    string
	httpClient *http.Client
}

func NewPlannerService(baseURL string) *PlannerService {
	if baseURL == "" {
		baseURL = "http://localhost:9090"
	}
	return &PlannerService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// PlannerResult mirrors the backend's algorithm-run response.
type PlannerResult struct {
	Success       bool    `json:"success"`
	Algorithm     string  `json:"algorithm"`
	StartNode     int64   `json:"start_node"`
	TargetNode    int64   `json:"target_node"`
	PathFound     bool    `json:"path_found"`
	Path          []int64 `json:"path"`
	PathLength    float64 `json:"path_length"`
	ExecutionTime string  `json:"execution_time"`
	NodesVisited  int     `json:"nodes_visited"`
	Result        string  `json:"result,omitempty"`
}

// RunAlgorithm asks the backend to run a path-finding algorithm between two
// node ids.
func (ps *PlannerService) RunAlgorithm(ctx context.Context, algorithm string, start, target int64) (*PlannerResult, error) {
	params := url.Values{}
	params.Set("algorithm", algorithm)
	params.Set("start", fmt.Sprintf("%d", start))
	params.Set("target", fmt.Sprintf("%d", target))

	requestURL := fmt.Sprintf("%s/api/algorithm/run?%s", ps.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := ps.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("planner request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planner request failed with status: %s", resp.Status)
	}

	var result PlannerResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("could not parse planner response: %w", err)
	}
	return &result, nil
}

// Status fetches the backend's status document. Callers treat a failure as
// "backend offline" rather than an error of their own.
func (ps *PlannerService) Status(ctx context.Context) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ps.baseURL+"/api/status", nil)
	if err != nil {
		return nil, err
	}

	resp, err := ps.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("planner status request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planner status request failed with status: %s", resp.Status)
	}

	var status map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("could not parse planner status: %w", err)
	}
	return status, nil
}
