package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"lifegrid/internal/app"
	"lifegrid/pkg/core"
	"lifegrid/pkg/pattern"
	_ "lifegrid/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim := factory(map[string]string{
		"w": strconv.Itoa(cfg.Width),
		"h": strconv.Itoa(cfg.Height),
	})

	if cfg.Pattern == "soup" {
		sim.Reset(cfg.Seed)
	} else {
		p, err := loadPattern(cfg.Pattern)
		if err != nil {
			log.Fatalf("load pattern: %v", err)
		}
		seeder, ok := sim.(app.Seeder)
		if !ok {
			log.Fatalf("sim %q does not accept pattern seeds", cfg.Sim)
		}
		seeder.Seed(pattern.Centered(p.Coords, cfg.Width, cfg.Height))
	}

	runner := app.NewRunner(sim, cfg, os.Stdout)
	final := runner.Run()
	fmt.Printf("%s: %d generations on %dx%d, final population %d\n",
		sim.Name(), cfg.Gens, cfg.Width, cfg.Height, final)
}

// loadPattern resolves a built-in pattern name or reads a .rle/.json
// pattern file from disk.
func loadPattern(name string) (pattern.Pattern, error) {
	switch {
	case strings.HasSuffix(name, ".rle"):
		data, err := os.ReadFile(name)
		if err != nil {
			return pattern.Pattern{}, err
		}
		rle, err := pattern.DecodeRLE(string(data))
		if err != nil {
			return pattern.Pattern{}, err
		}
		return pattern.Pattern{Meta: rle.Meta, Coords: rle.Coords}, nil
	case strings.HasSuffix(name, ".json"):
		data, err := os.ReadFile(name)
		if err != nil {
			return pattern.Pattern{}, err
		}
		return pattern.DecodeDocument(data)
	default:
		p, ok := pattern.Builtin(name)
		if !ok {
			return pattern.Pattern{}, fmt.Errorf("unknown pattern %q (built-ins: %s)",
				name, strings.Join(pattern.Names(), ", "))
		}
		return p, nil
	}
}
