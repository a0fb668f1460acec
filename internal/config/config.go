package config

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the persisted tracker configuration. Colors maps a breakdown
// label to the color it was assigned the first time it was charted; the
// mapping is saved back so the same label keeps its color on every
// subsequent run.
type Config struct {
	DefaultRange string            `yaml:"default_range"`
	Colors       map[string]string `yaml:"colors"`

	dirty bool
}

// palette holds the colors handed out to new labels, in assignment order.
var palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		DefaultRange: "w",
		Colors:       make(map[string]string),
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".clockwork", "config.yaml"), nil
}

// Load reads the config file, falling back to defaults when the file is
// missing or unreadable.
func Load() *Config {
	path, err := Path()
	if err != nil {
		return Default()
	}
	return loadFrom(path)
}

func loadFrom(path string) *Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default()
	}
	if cfg.Colors == nil {
		cfg.Colors = make(map[string]string)
	}
	if cfg.DefaultRange == "" {
		cfg.DefaultRange = "w"
	}
	return cfg
}

// Save writes the config back if any color assignments were added.
func (c *Config) Save() error {
	if !c.dirty {
		return nil
	}
	path, err := Path()
	if err != nil {
		return err
	}
	return c.saveTo(path)
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	c.dirty = false
	return nil
}

// ColorFor returns the persisted color for a label, assigning the next
// palette color on first sight. Once the palette is exhausted new labels
// get a stable color derived from the label itself.
func (c *Config) ColorFor(label string) string {
	if color, ok := c.Colors[label]; ok {
		return color
	}

	var color string
	if len(c.Colors) < len(palette) {
		color = palette[len(c.Colors)]
	} else {
		h := fnv.New32a()
		h.Write([]byte(label))
		color = fmt.Sprintf("#%06X", h.Sum32()&0xFFFFFF)
	}

	c.Colors[label] = color
	c.dirty = true
	return color
}
