package streetgraph

import (
	"fmt"
	"math/rand"
	"time"

	"street-network-server/models"
)

// RandomSampler draws up to MaxNodes nodes uniformly without replacement.
// The draw order carries no meaning.
type RandomSampler struct {
	MaxNodes int
	rng      *rand.Rand
}

// NewRandomSampler builds a sampler with its own random source. Seed 0 draws
// one from the clock, so plain CLI runs keep varying between invocations
// while tests can pin the exact sample.
func NewRandomSampler(maxNodes int, seed int64) (*RandomSampler, error) {
	if maxNodes <= 0 {
		return nil, fmt.Errorf("%w: max nodes must be positive, got %d", ErrConfig, maxNodes)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSampler{
		MaxNodes: maxNodes,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *RandomSampler) Select(nodes []models.Node) ([]models.Node, map[int64]bool) {
	count := s.MaxNodes
	if count > len(nodes) {
		count = len(nodes)
	}

	// Partial Fisher-Yates over a copy: after count swaps the first count
	// slots are a uniform draw without replacement and the input is intact.
	shuffled := make([]models.Node, len(nodes))
	copy(shuffled, nodes)
	for i := 0; i < count; i++ {
		j := i + s.rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	selected := shuffled[:count:count]
	ids := make(map[int64]bool, count)
	for _, node := range selected {
		ids[node.ID] = true
	}
	return selected, ids
}

func (s *RandomSampler) Describe() string {
	return fmt.Sprintf("Random sample of up to %d nodes from the full street dataset", s.MaxNodes)
}

func (s *RandomSampler) Annotate(meta *models.Metadata) {
	sampleSize := s.MaxNodes
	meta.SampleSize = &sampleSize
}
