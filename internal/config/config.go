// Package config loads scheduler configuration from a YAML or JSON
// file with LQ_-prefixed environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/abhisek/lessonq/internal/catalog"
	"github.com/abhisek/lessonq/internal/queue"
)

// RangeConfig is a lesson range as configured.
type RangeConfig struct {
	Start int `koanf:"start"`
	End   int `koanf:"end"`
}

// Config is the full scheduler configuration.
type Config struct {
	// DB is the SQLite path; empty means the default XDG location.
	DB string `koanf:"db"`
	// Quota is the default daily lesson quota for users without a
	// purchased override.
	Quota int `koanf:"quota"`
	// Backfill is "include_yesterday" (default) or "skip_yesterday".
	Backfill string `koanf:"backfill"`
	// SweepMinutes is the sweeper interval.
	SweepMinutes int `koanf:"sweep_minutes"`
	// Levels maps proficiency levels to lesson ranges. Empty means the
	// built-in catalog.
	Levels map[string]RangeConfig `koanf:"levels"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Quota:        queue.MinQuota,
		Backfill:     "include_yesterday",
		SweepMinutes: 30,
	}
}

// Load reads configuration from path (YAML or JSON by extension) and
// applies LQ_ environment overrides. An empty path yields defaults plus
// environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("LQ_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "lq_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Backfill {
	case "", "include_yesterday", "skip_yesterday":
	default:
		return fmt.Errorf("unknown backfill policy %q", c.Backfill)
	}
	if c.SweepMinutes <= 0 {
		c.SweepMinutes = 30
	}
	for level, r := range c.Levels {
		if !(catalog.LessonRange{Start: r.Start, End: r.End}).Valid() {
			return fmt.Errorf("level %q: invalid range %d-%d", level, r.Start, r.End)
		}
	}
	return nil
}

// Catalog builds the level catalog: configured levels when present,
// otherwise the built-in set.
func (c *Config) Catalog() *catalog.Catalog {
	if len(c.Levels) == 0 {
		return catalog.Default()
	}
	levels := make(map[string]catalog.LessonRange, len(c.Levels))
	for level, r := range c.Levels {
		levels[level] = catalog.LessonRange{Start: r.Start, End: r.End}
	}
	return catalog.New(levels)
}

// BackfillPolicy maps the configured policy name to the scheduler
// option.
func (c *Config) BackfillPolicy() queue.BackfillPolicy {
	if c.Backfill == "skip_yesterday" {
		return queue.BackfillSkipYesterday
	}
	return queue.BackfillIncludeYesterday
}
