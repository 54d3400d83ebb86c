package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"nibbled/internal/frame"
)

type Editor struct {
	TickMS int `toml:"tick_ms"`
}

type Theme struct {
	Background       string `toml:"background"`
	Foreground       string `toml:"foreground"`
	Address          string `toml:"address"`
	ASCII            string `toml:"ascii"`
	HeaderBackground string `toml:"header_background"`
	HeaderForeground string `toml:"header_foreground"`
	StatusBackground string `toml:"status_background"`
	StatusForeground string `toml:"status_foreground"`
	DirtyMarker      string `toml:"dirty_marker"`
}

type Config struct {
	Editor Editor `toml:"editor"`
	Theme  Theme  `toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Editor: Editor{
			TickMS: 16,
		},
		Theme: Theme{
			Background:       "#000000",
			Foreground:       "#FFFFFF",
			Address:          "#808080",
			ASCII:            "#FFFFFF",
			HeaderBackground: "#0000FF",
			HeaderForeground: "#FFFFFF",
			StatusBackground: "#0000FF",
			StatusForeground: "#FFFFFF",
			DirtyMarker:      "#FF0000",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "nibbled.toml"
	}
	return filepath.Join(home, ".config", "nibbled", "nibbled.toml")
}

func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save writes the configuration to its default location, creating the
// directory if needed.
func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Palette is the theme with every color parsed into a frame color.
type Palette struct {
	Background frame.Color
	Foreground frame.Color
	Address    frame.Color
	ASCII      frame.Color
	HeaderBg   frame.Color
	HeaderFg   frame.Color
	StatusBg   frame.Color
	StatusFg   frame.Color
	Dirty      frame.Color
}

func (c *Config) Palette() (*Palette, error) {
	p := &Palette{}

	fields := []struct {
		name string
		hex  string
		dst  *frame.Color
	}{
		{"background", c.Theme.Background, &p.Background},
		{"foreground", c.Theme.Foreground, &p.Foreground},
		{"address", c.Theme.Address, &p.Address},
		{"ascii", c.Theme.ASCII, &p.ASCII},
		{"header_background", c.Theme.HeaderBackground, &p.HeaderBg},
		{"header_foreground", c.Theme.HeaderForeground, &p.HeaderFg},
		{"status_background", c.Theme.StatusBackground, &p.StatusBg},
		{"status_foreground", c.Theme.StatusForeground, &p.StatusFg},
		{"dirty_marker", c.Theme.DirtyMarker, &p.Dirty},
	}

	for _, f := range fields {
		col, err := frame.FromHex(f.hex)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = col
	}

	return p, nil
}
