// Package workload generates deterministic benchmark log streams in the
// format read by convert: tests framed by start and complete markers,
// iteration result lines, and unrelated output in between.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"math"
	mrand "math/rand"
)

// Iteration is one generated result line.
type Iteration struct {
	Iteration     int64
	NReps         int64
	TotalDuration int64
}

// Test is one generated test and its iterations, in emission order.
type Test struct {
	Name       string
	Iterations []Iteration
}

// Summary contains statistics about the generated stream.
type Summary struct {
	TotalLines int
	NoiseLines int
	Tests      []Test
}

// Config controls stream generation parameters.
type Config struct {
	NumTests      int
	MinIterations int
	MaxIterations int
	MaxReps       int
	// NoiseRate is the probability of an unrelated line before each
	// generated line.
	NoiseRate float64
	// Distribution of per-repetition cost: uniform or exponential.
	Distribution string
	Seed         int64
}

// Generator produces deterministic log streams from a Config.
type Generator struct {
	cfg Config
	rng *mrand.Rand
	bw  *bufio.Writer
	sum Summary
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Generate writes a log stream to w and returns a Summary.
func (g *Generator) Generate(w io.Writer) (Summary, error) {
	g.bw = bufio.NewWriter(w)
	g.sum = Summary{}

	for i := 0; i < g.cfg.NumTests; i++ {
		test := Test{Name: fmt.Sprintf("test-%03d", i)}

		if err := g.line("TEST START: " + test.Name); err != nil {
			return g.sum, err
		}

		n := g.cfg.MinIterations
		if spread := g.cfg.MaxIterations - g.cfg.MinIterations; spread > 0 {
			n += g.rng.Intn(spread + 1)
		}

		for it := 0; it < n; it++ {
			iter := g.iteration(int64(it))

			if err := g.line(fmt.Sprintf("TEST RESULTS: iteration %d: %d reps took %d",
				iter.Iteration, iter.NReps, iter.TotalDuration)); err != nil {
				return g.sum, err
			}

			test.Iterations = append(test.Iterations, iter)
		}

		if err := g.line("TEST COMPLETE"); err != nil {
			return g.sum, err
		}

		g.sum.Tests = append(g.sum.Tests, test)
	}

	if err := g.bw.Flush(); err != nil {
		return g.sum, fmt.Errorf("flush: %w", err)
	}

	return g.sum, nil
}

func (g *Generator) line(s string) error {
	if g.cfg.NoiseRate > 0 && g.rng.Float64() < g.cfg.NoiseRate {
		noise := fmt.Sprintf("[kernel] tick %d", g.rng.Intn(1_000_000))
		if _, err := fmt.Fprintln(g.bw, noise); err != nil {
			return fmt.Errorf("write noise: %w", err)
		}

		g.sum.NoiseLines++
		g.sum.TotalLines++
	}

	if _, err := fmt.Fprintln(g.bw, s); err != nil {
		return fmt.Errorf("write line: %w", err)
	}

	g.sum.TotalLines++

	return nil
}

func (g *Generator) iteration(i int64) Iteration {
	maxReps := max(g.cfg.MaxReps, 1)
	reps := int64(1 + g.rng.Intn(maxReps))

	return Iteration{
		Iteration:     i,
		NReps:         reps,
		TotalDuration: reps * g.perRepCost(),
	}
}

func (g *Generator) perRepCost() int64 {
	switch g.cfg.Distribution {
	case "exponential":
		// Mean of 1000 time units per repetition.
		u := g.rng.Float64()
		return int64(-math.Log(1-u)*1000) + 1

	default:
		return int64(1 + g.rng.Intn(2000))
	}
}
