package services

import (
	"street-network-server/models"
	"street-network-server/streetgraph"
)

// SamplingService runs the reduction pipeline: select a node subset, drop
// edges with dangling endpoints, rebuild the metadata. Each stage produces a
// new value; the input dataset is never modified.
type SamplingService struct{}

func NewSamplingService() *SamplingService {
	return &SamplingService{}
}

// Reduce derives a smaller, connectivity-consistent dataset from ds using the
// given selection policy.
func (ss *SamplingService) Reduce(ds models.Dataset, sel streetgraph.NodeSelector) (models.Dataset, models.ReductionReport) {
	nodes, ids := sel.Select(ds.Nodes)
	edges := streetgraph.FilterEdges(ds.Edges, ids)
	meta := streetgraph.AnnotateMetadata(ds, nodes, edges, sel)

	reduced := models.Dataset{
		Description: sel.Describe(),
		Nodes:       nodes,
		Edges:       edges,
		Metadata:    meta,
	}

	report := models.ReductionReport{
		OriginalNodes: len(ds.Nodes),
		OriginalEdges: len(ds.Edges),
		SelectedNodes: len(nodes),
		RetainedEdges: len(edges),
		Density:       meta.Density,
	}
	if len(ds.Nodes) > 0 {
		report.NodesKeptPct = float64(len(nodes)) / float64(len(ds.Nodes)) * 100
	}
	// An empty selection is a valid result, not an error; flag it so the
	// caller can tell the user.
	if len(nodes) == 0 {
		report.Messages = append(report.Messages, "selection matched no nodes")
	} else if len(edges) == 0 {
		report.Messages = append(report.Messages, "no edges connect the selected nodes")
	}

	return reduced, report
}

// ReduceFile loads a dataset, reduces it and writes the result. The output
// file is only touched after every transformation stage succeeded, so a
// failed run never leaves a partial file behind.
func (ss *SamplingService) ReduceFile(inputPath, outputPath string, sel streetgraph.NodeSelector) (models.ReductionReport, error) {
	ds, err := streetgraph.LoadDataset(inputPath)
	if err != nil {
		return models.ReductionReport{}, err
	}

	reduced, report := ss.Reduce(ds, sel)

	if err := streetgraph.WriteDataset(reduced, outputPath); err != nil {
		return models.ReductionReport{}, err
	}
	return report, nil
}
