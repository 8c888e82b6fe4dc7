package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heartburst.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Message != parameter.DefaultMessage || cfg.Initial != parameter.DefaultInitial {
		t.Errorf("default texts = %q, %q", cfg.Message, cfg.Initial)
	}
	colors, err := cfg.Colors()
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 7 || colors[0] != (render.RGB{R: 255, G: 0, B: 85}) {
		t.Errorf("default palette = %v", colors)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
message = "TE AMO MILY"
final_lines = ["ONE", "TWO"]
palette = ["#00ff00", "#00f"]
seed = 42

[display]
fps = 30
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Message != "TE AMO MILY" || cfg.FinalLines[1] != "TWO" || cfg.Seed != 42 {
		t.Errorf("decoded = %+v", cfg)
	}
	if cfg.Display.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.Display.FPS)
	}
	if cfg.Display.DotSize != parameter.DefaultDotSize || cfg.Initial != parameter.DefaultInitial {
		t.Error("absent keys lost their defaults")
	}
	colors, _ := cfg.Colors()
	if colors[1] != (render.RGB{B: 255}) {
		t.Errorf("short hex decoded to %v", colors[1])
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"syntax", `message = `, false},
		{"unknown key", `colour = "red"`, true},
		{"empty message", `message = "  "`, true},
		{"one final line", `final_lines = ["ONLY"]`, true},
		{"fps low", "[display]\nfps = 5", true},
		{"fps high", "[display]\nfps = 500", true},
		{"dot size", "[display]\ndot_size = 0", true},
		{"volume", "[audio]\nvolume = 1.5", true},
		{"empty palette", `palette = []`, true},
		{"bad color", `palette = ["#zzzzzz"]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalid) = %v, want %v (%v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseColors(t *testing.T) {
	got := MustParseColors(parameter.HeartColors)
	want := []render.RGB{{R: 255, G: 0, B: 85}, {R: 255, G: 153, B: 179}}
	if len(got) != len(want) {
		t.Fatalf("got %d colors", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color %d = %v, want %v", i, got[i], want[i])
		}
	}
}
