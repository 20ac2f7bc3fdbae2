package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"street-network-server/models"
	"street-network-server/services"
	"street-network-server/streetgraph"
)

const usage = `Usage:
  streetnet sample <input> <output> --max-nodes N [--seed S]
  streetnet geofilter <input> <output> --center-lat LAT --center-lon LON --radius-km R
  streetnet extract <output> --place "City, Country" | --lat LAT --lon LON --radius-km R [--network-type drive]
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "sample":
		runSample(os.Args[2:])
	case "geofilter":
		runGeoFilter(os.Args[2:])
	case "extract":
		runExtract(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n%s", os.Args[1], usage)
		os.Exit(2)
	}
}

// splitArgs parses flags wherever they appear, so both
// "sample --max-nodes 5 in out" and "sample in out --max-nodes 5" work.
func splitArgs(fs *flag.FlagSet, args []string, positionals int) []string {
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) < positionals {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if len(rest) > positionals {
		fs.Parse(rest[positionals:])
	}
	return rest[:positionals]
}

func runSample(args []string) {
	fs := flag.NewFlagSet("sample", flag.ExitOnError)
	maxNodes := fs.Int("max-nodes", 1000, "maximum number of nodes to keep")
	seed := fs.Int64("seed", 0, "random seed; 0 draws one from the clock")
	paths := splitArgs(fs, args, 2)
	input, output := paths[0], paths[1]

	sampler, err := streetgraph.NewRandomSampler(*maxNodes, *seed)
	if err != nil {
		log.Fatalf("sample: %v", err)
	}

	report, err := services.NewSamplingService().ReduceFile(input, output, sampler)
	if err != nil {
		log.Fatalf("sample: %v", err)
	}
	printReport(output, report)
}

func runGeoFilter(args []string) {
	fs := flag.NewFlagSet("geofilter", flag.ExitOnError)
	centerLat := fs.Float64("center-lat", 0, "latitude of the center point")
	centerLon := fs.Float64("center-lon", 0, "longitude of the center point")
	radiusKm := fs.Float64("radius-km", 2, "radius in kilometers")
	paths := splitArgs(fs, args, 2)
	input, output := paths[0], paths[1]

	filter, err := streetgraph.NewRadiusFilter(*centerLat, *centerLon, *radiusKm)
	if err != nil {
		log.Fatalf("geofilter: %v", err)
	}

	report, err := services.NewSamplingService().ReduceFile(input, output, filter)
	if err != nil {
		log.Fatalf("geofilter: %v", err)
	}
	printReport(output, report)
}

func runExtract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	place := fs.String("place", "", "place name to extract, e.g. \"Culiacán, Sinaloa, México\"")
	lat := fs.Float64("lat", 0, "latitude of the center point")
	lon := fs.Float64("lon", 0, "longitude of the center point")
	radiusKm := fs.Float64("radius-km", 5, "radius in kilometers around the center point")
	networkType := fs.String("network-type", "drive", "network type: drive, walk or bike")
	paths := splitArgs(fs, args, 1)
	output := paths[0]

	source := services.NewOverpassSource()
	ctx := context.Background()

	var network services.RawNetwork
	var city string
	var err error
	if *place != "" {
		city = *place
		log.Printf("Extracting streets of %s...", city)
		network, err = source.FetchPlace(ctx, *place, *networkType)
	} else {
		city = fmt.Sprintf("(%g, %g)", *lat, *lon)
		log.Printf("Extracting streets around %s...", city)
		network, err = source.FetchPoint(ctx, *lat, *lon, *radiusKm, *networkType)
	}
	if err != nil {
		log.Fatalf("extract: %v", err)
	}
	log.Printf("Network fetched: %d nodes, %d edges", len(network.Nodes), len(network.Edges))

	result := source.Simplify(network)
	if result.Status == services.AlreadySimplified {
		log.Println("Network is already simplified")
	} else {
		log.Printf("Simplified to %d nodes, %d edges", len(result.Network.Nodes), len(result.Network.Edges))
	}

	ds := services.BuildDataset(result.Network, city, *networkType)
	if err := streetgraph.WriteDataset(ds, output); err != nil {
		log.Fatalf("extract: %v", err)
	}
	log.Printf("Dataset written to %s", output)
	log.Printf("Nodes: %d, Edges: %d, Density: %.2f edges/node",
		ds.Metadata.TotalNodes, ds.Metadata.TotalEdges, ds.Metadata.Density)
}

func printReport(output string, report models.ReductionReport) {
	log.Printf("Reduced dataset written to %s", output)
	log.Printf("Nodes: %d (from %d, %.1f%% kept)", report.SelectedNodes, report.OriginalNodes, report.NodesKeptPct)
	log.Printf("Edges: %d (from %d)", report.RetainedEdges, report.OriginalEdges)
	log.Printf("Density: %.2f edges/node", report.Density)
	for _, msg := range report.Messages {
		log.Printf("Note: %s", msg)
	}
}
