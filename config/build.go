// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/conceptspace/concept"
	"github.com/katalvlaran/conceptspace/space"
)

// BuildSpace turns the space section into a validated *space.Space.
func (c *Config) BuildSpace() (*space.Space, error) {
	domains := make(map[string][]int, len(c.Space.Domains))
	for _, d := range c.Space.Domains {
		domains[d.Name] = append([]int(nil), d.Dimensions...)
	}

	var opts []space.Option
	if len(c.Space.DimensionNames) > 0 {
		opts = append(opts, space.WithDimensionNames(c.Space.DimensionNames...))
	}
	return space.New(domains, opts...)
}

// Logger builds a slog.Logger writing to w according to the log section.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: c.level()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

func (c *Config) level() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BatchOptions converts the limits section into concept.HypervolumeAll options.
func (c *Config) BatchOptions(logger *slog.Logger) []concept.Option {
	return []concept.Option{
		concept.WithMaxDimensions(c.Limits.MaxDimensions),
		concept.WithMaxBoxes(c.Limits.MaxBoxes),
		concept.WithConcurrency(c.Limits.Concurrency),
		concept.WithLogger(logger),
	}
}
