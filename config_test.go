package onscreen

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefaultStickConfig(t *testing.T) {
	cfg := DefaultStickConfig()
	if cfg.MovementRange != 50 {
		t.Errorf("MovementRange = %v, want 50", cfg.MovementRange)
	}
	if cfg.ControlPath != "<Gamepad>/leftStick" {
		t.Errorf("ControlPath = %q", cfg.ControlPath)
	}
	if cfg.UseIsolatedInputActions {
		t.Error("isolated mode on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestStickConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StickConfig)
	}{
		{"zero range", func(c *StickConfig) { c.MovementRange = 0 }},
		{"negative range", func(c *StickConfig) { c.MovementRange = -5 }},
		{"bad control path", func(c *StickConfig) { c.ControlPath = "leftStick" }},
		{"bad down binding", func(c *StickConfig) { c.PointerDownBindings = []string{"<Mouse>"} }},
		{"bad move binding", func(c *StickConfig) { c.PointerMoveBindings = []string{"position"} }},
		{"unknown curve", func(c *StickConfig) { c.ResponseCurve = "wobbly" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultStickConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseStickConfigYAML(t *testing.T) {
	data := []byte(`
movement_range: 80
use_isolated_input_actions: true
pointer_down_bindings:
  - <Touchscreen>/touch*/press
response_curve: in-out-sine
`)
	cfg, err := ParseStickConfigYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MovementRange != 80 || !cfg.UseIsolatedInputActions || cfg.ResponseCurve != "in-out-sine" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ControlPath != DefaultControlPath {
		t.Errorf("missing control_path did not keep the default: %q", cfg.ControlPath)
	}
	if !slices.Equal(cfg.PointerDownBindings, []string{"<Touchscreen>/touch*/press"}) {
		t.Errorf("PointerDownBindings = %v", cfg.PointerDownBindings)
	}

	if _, err := ParseStickConfigYAML([]byte("movement_range: -1\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative range = %v, want ErrInvalidConfig", err)
	}
	if _, err := ParseStickConfigYAML([]byte("movement_range: [\n")); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func TestParseStickConfigTOML(t *testing.T) {
	data := []byte(`
movement_range = 25.5
control_path = "<Gamepad>/rightStick"
pointer_move_bindings = ["<Mouse>/position"]
`)
	cfg, err := ParseStickConfigTOML(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MovementRange != 25.5 || cfg.ControlPath != "<Gamepad>/rightStick" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !slices.Equal(cfg.PointerMoveBindings, []string{"<Mouse>/position"}) {
		t.Errorf("PointerMoveBindings = %v", cfg.PointerMoveBindings)
	}
	if _, err := ParseStickConfigTOML([]byte(`response_curve = "nope"`)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown curve = %v, want ErrInvalidConfig", err)
	}
}

func TestSaveLoadStickConfig(t *testing.T) {
	want := StickConfig{
		MovementRange:           64,
		ControlPath:             "<Gamepad>/rightStick",
		UseIsolatedInputActions: true,
		PointerDownBindings:     []string{"<Mouse>/leftButton", "<Pen>/tip"},
		ResponseCurve:           "out-cubic",
	}
	dir := t.TempDir()
	for _, name := range []string{"stick.yaml", "stick.yml", "stick.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := SaveStickConfig(path, want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := LoadStickConfig(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.MovementRange != want.MovementRange || got.ControlPath != want.ControlPath ||
				got.UseIsolatedInputActions != want.UseIsolatedInputActions ||
				got.ResponseCurve != want.ResponseCurve ||
				!slices.Equal(got.PointerDownBindings, want.PointerDownBindings) ||
				len(got.PointerMoveBindings) != 0 {
				t.Errorf("loaded %+v, want %+v", got, want)
			}
		})
	}
}

func TestLoadStickConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadStickConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file = %v, want os.ErrNotExist", err)
	}
	path := filepath.Join(dir, "stick.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStickConfig(path); err == nil {
		t.Error("unsupported extension accepted")
	}
	if err := SaveStickConfig(path, DefaultStickConfig()); err == nil {
		t.Error("Save with unsupported extension accepted")
	}
}
