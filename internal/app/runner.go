package app

import (
	"fmt"
	"io"
	"time"

	"lifegrid/pkg/core"
)

// Seeder is implemented by simulations that accept an explicit live-cell
// seed in addition to random soups.
type Seeder interface {
	Seed([]core.Coord)
}

// Runner drives a simulation headlessly: it owns pacing and presentation,
// while the simulation only ever advances one synchronous step at a time.
type Runner struct {
	sim    core.Sim
	pace   *core.FixedStep
	out    io.Writer
	gens   int
	render bool
}

// NewRunner builds a Runner for the provided simulation.
func NewRunner(sim core.Sim, cfg *Config, out io.Writer) *Runner {
	return &Runner{
		sim:    sim,
		pace:   core.NewFixedStep(cfg.TPS),
		out:    out,
		gens:   cfg.Gens,
		render: cfg.Render,
	}
}

// Run steps the simulation up to the generation limit, rendering frames at
// the configured tick rate when enabled. It returns the final population.
func (r *Runner) Run() int {
	if r.render {
		r.frame(0)
	}
	for gen := 1; gen <= r.gens; gen++ {
		if r.render {
			for !r.pace.ShouldStep() {
				time.Sleep(time.Millisecond)
			}
		}
		r.sim.Step()
		if r.render {
			r.frame(gen)
		}
	}
	return population(r.sim.Cells())
}

func (r *Runner) frame(gen int) {
	fmt.Fprint(r.out, clearScreen)
	renderFrame(r.out, r.sim.Cells(), r.sim.Size())
	fmt.Fprintf(r.out, "%s  gen %d  population %d\n", r.sim.Name(), gen, population(r.sim.Cells()))
}

func population(cells []uint8) int {
	n := 0
	for _, v := range cells {
		if v != 0 {
			n++
		}
	}
	return n
}
