package landscape

import (
	"fmt"
	"strconv"
	"strings"

	"terrain-ca/pkg/terrain"
)

// Config controls the terrain dimensions, smoothing and value weights.
type Config struct {
	Width  int
	Height int

	Smoothness int
	Seed       int64
	Order      terrain.Order

	Values terrain.WeightTable[string]
}

// DefaultValues is the four-symbol landscape: mountains, forest, sand, water.
func DefaultValues() terrain.WeightTable[string] {
	return terrain.WeightTable[string]{
		{Value: "X", Weight: 2.1},
		{Value: "#", Weight: 2.2},
		{Value: ".", Weight: 2.1},
		{Value: " ", Weight: 2.2},
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      80,
		Height:     80,
		Smoothness: 100,
		Seed:       1337,
		Order:      terrain.OrderShuffled,
		Values:     DefaultValues(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable entries keep their defaults.
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
	if v, ok := cfg["smoothness"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Smoothness = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["order"]; ok {
		if parsed, err := terrain.ParseOrder(v); err == nil {
			c.Order = parsed
		}
	}
	if v, ok := cfg["values"]; ok {
		if parsed, err := ParseValues(v); err == nil {
			c.Values = parsed
		}
	}
	return c
}

// ParseValues reads a comma-separated list of symbol:weight pairs such as
// "X:2.1,#:2.2, :2". The weight follows the last colon, so both " " and ":"
// are usable symbols. Order is preserved.
func ParseValues(s string) (terrain.WeightTable[string], error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: value list is empty", terrain.ErrInvalidConfiguration)
	}
	var table terrain.WeightTable[string]
	for i, part := range strings.Split(s, ",") {
		sep := strings.LastIndex(part, ":")
		if sep <= 0 {
			return nil, fmt.Errorf("%w: entry %d %q is not symbol:weight", terrain.ErrInvalidConfiguration, i, part)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(part[sep+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d %q: %v", terrain.ErrInvalidConfiguration, i, part, err)
		}
		table = append(table, terrain.Weight[string]{Value: part[:sep], Weight: weight})
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// FormatValues is the inverse of ParseValues.
func FormatValues(table terrain.WeightTable[string]) string {
	parts := make([]string, len(table))
	for i, w := range table {
		parts[i] = w.Value + ":" + strconv.FormatFloat(w.Weight, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
