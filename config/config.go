// Package config loads the runtime show settings from an optional TOML file
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/render"
)

// ErrInvalid marks a configuration that cannot drive a show
var ErrInvalid = errors.New("invalid config")

// Config is the runtime configuration of a show
type Config struct {
	Message    string        `toml:"message"`
	FinalLines []string      `toml:"final_lines"`
	Initial    string        `toml:"initial"`
	Palette    []string      `toml:"palette"`
	Seed       uint64        `toml:"seed"`
	Display    DisplayConfig `toml:"display"`
	Audio      AudioConfig   `toml:"audio"`
}

type DisplayConfig struct {
	FPS     int `toml:"fps"`
	DotSize int `toml:"dot_size"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in show
func Default() *Config {
	return &Config{
		Message:    parameter.DefaultMessage,
		FinalLines: []string{parameter.DefaultFinalLines[0], parameter.DefaultFinalLines[1]},
		Initial:    parameter.DefaultInitial,
		Palette:    append([]string(nil), parameter.DefaultPalette...),
		Display: DisplayConfig{
			FPS:     parameter.DefaultFPS,
			DotSize: parameter.DefaultDotSize,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// Load reads path over the defaults; an empty path yields the defaults
// Keys absent from the file keep their default value
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the show cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Message) == "" {
		return fmt.Errorf("%w: message is empty", ErrInvalid)
	}
	if len(c.FinalLines) != 2 {
		return fmt.Errorf("%w: final_lines needs exactly 2 lines, got %d", ErrInvalid, len(c.FinalLines))
	}
	for i, l := range c.FinalLines {
		if strings.TrimSpace(l) == "" {
			return fmt.Errorf("%w: final_lines[%d] is empty", ErrInvalid, i)
		}
	}
	if c.Display.FPS < 10 || c.Display.FPS > 240 {
		return fmt.Errorf("%w: display.fps %d outside [10, 240]", ErrInvalid, c.Display.FPS)
	}
	if c.Display.DotSize < 1 || c.Display.DotSize > 16 {
		return fmt.Errorf("%w: display.dot_size %d outside [1, 16]", ErrInvalid, c.Display.DotSize)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %g outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalid)
	}
	if _, err := ParseColors(c.Palette); err != nil {
		return fmt.Errorf("%w: palette: %v", ErrInvalid, err)
	}
	return nil
}

// Colors returns the decoded palette
func (c *Config) Colors() ([]render.RGB, error) {
	return ParseColors(c.Palette)
}

// ParseColors decodes "#rrggbb" strings
func ParseColors(hexes []string) ([]render.RGB, error) {
	out := make([]render.RGB, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		out = append(out, render.RGB{R: r, G: g, B: b})
	}
	return out, nil
}

// MustParseColors is ParseColors for built-in palettes
func MustParseColors(hexes []string) []render.RGB {
	out, err := ParseColors(hexes)
	if err != nil {
		panic(err)
	}
	return out
}
