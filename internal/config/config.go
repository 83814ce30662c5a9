// Package config loads the tunables a grid-backed service needs to
// bootstrap: chunk geometry, the default generator pipeline, and
// concurrency limits for batch generation.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures the tunable parameters needed to bootstrap a grid.
type Config struct {
	Chunk     ChunkConfig     `json:"chunk" yaml:"chunk"`
	Terrain   TerrainConfig   `json:"terrain" yaml:"terrain"`
	Batch     BatchConfig     `json:"batch" yaml:"batch"`
}

// ChunkConfig sizes the square/cubic chunk the grid is bucketed into.
type ChunkConfig struct {
	Size int `json:"size" yaml:"size"`
}

// TerrainConfig parameterises the demo passability generator.
type TerrainConfig struct {
	Seed    int64   `json:"seed" yaml:"seed"`
	Density float64 `json:"density" yaml:"density"`
}

// BatchConfig bounds concurrent multi-region generation.
type BatchConfig struct {
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// Load reads configuration from path, dispatching on file extension:
// .yaml/.yml decode with gopkg.in/yaml.v3, everything else as JSON. An
// empty path returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Chunk: ChunkConfig{Size: 32},
		Terrain: TerrainConfig{
			Seed:    1337,
			Density: 0.55,
		},
		Batch: BatchConfig{Concurrency: 4},
	}
}

func (c *Config) Validate() error {
	if c.Chunk.Size <= 0 {
		return errors.New("chunk.size must be positive")
	}
	if c.Terrain.Density <= 0 || c.Terrain.Density >= 1 {
		return errors.New("terrain.density must be in (0, 1)")
	}
	if c.Batch.Concurrency < 0 {
		return errors.New("batch.concurrency cannot be negative")
	}
	return nil
}
