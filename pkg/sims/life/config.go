package life

import (
	"runtime"
	"strconv"

	"lifegrid/pkg/core"
)

// Config controls the dimensions, rule and step execution of a Life grid.
type Config struct {
	Width  int
	Height int

	// Rule is a birth/survival string such as "B3/S23".
	Rule string

	// Workers bounds the goroutines used by Step. Values below 2 select
	// the serial path; larger grids shard rows across this many workers.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Rule:    "B3/S23",
		Workers: runtime.NumCPU(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := core.ParseRule(v); err == nil {
			c.Rule = v
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}
