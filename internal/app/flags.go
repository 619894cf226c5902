package app

import "flag"

// Config represents the command-line parameters for the runner.
type Config struct {
	Sim     string
	Pattern string
	Width   int
	Height  int
	Gens    int
	TPS     int
	Seed    int64
	Render  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Pattern: "glider",
		Width:   64,
		Height:  32,
		Gens:    200,
		TPS:     15,
		Seed:    42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern name, a .json/.rle file, or 'soup' for a random fill")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Gens, "gens", c.Gens, "number of generations to run")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second when rendering")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.BoolVar(&c.Render, "render", c.Render, "draw each generation to the terminal")
}
