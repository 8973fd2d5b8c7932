package infer

import (
	"fmt"

	"github.com/edda-ml/edda/internal/dist"
	"github.com/edda-ml/edda/internal/tensor"
)

// Chain holds the draws produced by a sampling algorithm.
type Chain struct {
	runID    string
	names    []string
	samples  map[string][]*tensor.Tensor
	accepted int
	total    int
}

func newChain(runID string, names []string) *Chain {
	return &Chain{
		runID:   runID,
		names:   names,
		samples: make(map[string][]*tensor.Tensor),
	}
}

func (c *Chain) record(snapshot map[string]*tensor.Tensor) {
	for _, name := range c.names {
		c.samples[name] = append(c.samples[name], snapshot[name])
	}
}

// RunID returns the run identifier.
func (c *Chain) RunID() string { return c.runID }

// Names returns the latent site names in declaration order.
func (c *Chain) Names() []string { return c.names }

// Samples returns the recorded draws for a site.
func (c *Chain) Samples(name string) []*tensor.Tensor { return c.samples[name] }

// Len returns the number of recorded draws.
func (c *Chain) Len() int {
	if len(c.names) == 0 {
		return 0
	}
	return len(c.samples[c.names[0]])
}

// AcceptRate returns the fraction of accepted proposals. Always 1 for
// algorithms without an accept step (SGLD).
func (c *Chain) AcceptRate() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.accepted) / float64(c.total)
}

// Empirical wraps a site's draws as an Empirical distribution.
func (c *Chain) Empirical(name string) *dist.Empirical {
	draws, ok := c.samples[name]
	if !ok {
		panic(fmt.Sprintf("chain: unknown site %q", name))
	}
	return dist.NewEmpirical(draws)
}

// Draw returns one posterior draw across all sites, for predictive
// replay.
func (c *Chain) Draw() map[string]*tensor.Tensor {
	n := c.Len()
	if n == 0 {
		panic("chain: no draws recorded")
	}
	i := tensor.RandIntn(n)
	out := make(map[string]*tensor.Tensor, len(c.names))
	for _, name := range c.names {
		out[name] = c.samples[name][i]
	}
	return out
}
