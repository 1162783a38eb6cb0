package experiment

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// CorridorConfig parameterizes the corridor sweep. Instance n places n
// habitats in a RegionSize×RegionSize region, links patches within
// MaxDistance and solves with seed SeedBase+n.
type CorridorConfig struct {
	Sizes       []int   `toml:"sizes"`
	RegionSize  float64 `toml:"region_size"`
	MaxDistance float64 `toml:"max_distance"`
	SeedBase    int64   `toml:"seed_base"`
}

// AssemblyConfig parameterizes the assembly sweep. Instance n cuts n
// fragments of FragmentLength from a random sequence of SequenceLength
// with seed SeedBase+n and assembles at threshold MinOverlap.
type AssemblyConfig struct {
	Sizes          []int `toml:"sizes"`
	FragmentLength int   `toml:"fragment_length"`
	SequenceLength int   `toml:"sequence_length"`
	MinOverlap     int   `toml:"min_overlap"`
	SeedBase       int64 `toml:"seed_base"`
}

// Config bundles both sweeps under one file.
type Config struct {
	Corridor CorridorConfig `toml:"corridor"`
	Assembly AssemblyConfig `toml:"assembly"`
}

// DefaultConfig returns the canonical sweep parameters.
func DefaultConfig() Config {
	return Config{
		Corridor: CorridorConfig{
			Sizes:       []int{10, 15, 20, 25, 30, 35, 40, 45, 50},
			RegionSize:  100,
			MaxDistance: 35,
			SeedBase:    42,
		},
		Assembly: AssemblyConfig{
			Sizes:          []int{10, 15, 20, 25, 30, 35, 40},
			FragmentLength: 15,
			SequenceLength: 200,
			MinOverlap:     3,
			SeedBase:       42,
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig: keys absent from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("experiment: read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("experiment: parse config %s: %w", path, err)
	}
	return cfg, nil
}
