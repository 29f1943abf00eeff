// Package config loads the server's optional YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at the config
// file. Without it, DefaultPath is tried and silently skipped if absent.
const EnvConfigPath = "SPRITEFORGE_CONFIG"

// DefaultPath is looked up relative to the working directory.
const DefaultPath = "spriteforge.yaml"

// Config holds the tunables of the sprite tool surface. Artifact name
// prefixes follow the original pipeline's conventions.
type Config struct {
	// OutputDir overrides where artifacts are written. Empty means next to
	// the source image.
	OutputDir string `yaml:"output_dir"`

	SpriteName    string `yaml:"sprite_name"`
	ColorsName    string `yaml:"colors_name"`
	HighlightName string `yaml:"highlight_name"`
	ExtractedName string `yaml:"extracted_name"`

	// SequencePattern globs the sibling frames considered by the sequence
	// diff, relative to the reference image's directory.
	SequencePattern string `yaml:"sequence_pattern"`

	// PaletteSize is the default color count for palette extraction.
	PaletteSize int `yaml:"palette_size"`

	// Workers caps concurrent frame decodes; 0 defers to host sizing.
	Workers int `yaml:"workers"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		SpriteName:      "sprite",
		ColorsName:      "unique",
		HighlightName:   "highlight",
		ExtractedName:   "extracted",
		SequencePattern: "*.png",
		PaletteSize:     6,
	}
}

// Load reads the config file at path, falling back to EnvConfigPath and
// then DefaultPath when path is empty. A missing file is not an error;
// defaults are returned. File values overlay the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PaletteSize < 0 {
		return fmt.Errorf("palette_size must not be negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	for _, name := range []string{c.SpriteName, c.ColorsName, c.HighlightName, c.ExtractedName} {
		if name == "" {
			return fmt.Errorf("artifact name prefixes must not be empty")
		}
	}
	return nil
}
