package onscreen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultMovementRange is the knob travel in parent-local units.
const DefaultMovementRange = 50

// DefaultControlPath is the control a stick drives when none is configured.
const DefaultControlPath = "<Gamepad>/leftStick"

// StickConfig is the persisted configuration of a Stick.
type StickConfig struct {
	// MovementRange is the maximum knob displacement. Must be > 0.
	MovementRange float64 `yaml:"movement_range" toml:"movement_range"`
	// ControlPath names the virtual control the stick drives.
	ControlPath string `yaml:"control_path" toml:"control_path"`
	// UseIsolatedInputActions drives the stick from private input actions so
	// device switching cannot cancel a drag.
	UseIsolatedInputActions bool `yaml:"use_isolated_input_actions" toml:"use_isolated_input_actions"`
	// PointerDownBindings and PointerMoveBindings replace the default
	// isolated-mode bindings when non-empty.
	PointerDownBindings []string `yaml:"pointer_down_bindings,omitempty" toml:"pointer_down_bindings,omitempty"`
	PointerMoveBindings []string `yaml:"pointer_move_bindings,omitempty" toml:"pointer_move_bindings,omitempty"`
	// ResponseCurve optionally reshapes the output magnitude. Empty means linear.
	ResponseCurve string `yaml:"response_curve,omitempty" toml:"response_curve,omitempty"`
}

// DefaultStickConfig returns a direct-mode config with the default range
// and control path.
func DefaultStickConfig() StickConfig {
	return StickConfig{
		MovementRange: DefaultMovementRange,
		ControlPath:   DefaultControlPath,
	}
}

// Validate reports the first invalid field.
func (c StickConfig) Validate() error {
	if !(c.MovementRange > 0) {
		return fmt.Errorf("%w: movement_range must be > 0, got %v", ErrInvalidConfig, c.MovementRange)
	}
	if _, err := ParseBinding(c.ControlPath); err != nil {
		return fmt.Errorf("%w: control_path: %w", ErrInvalidConfig, err)
	}
	for _, p := range c.PointerDownBindings {
		if _, err := ParseBinding(p); err != nil {
			return fmt.Errorf("%w: pointer_down_bindings: %w", ErrInvalidConfig, err)
		}
	}
	for _, p := range c.PointerMoveBindings {
		if _, err := ParseBinding(p); err != nil {
			return fmt.Errorf("%w: pointer_move_bindings: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := lookupResponseCurve(c.ResponseCurve); err != nil {
		return fmt.Errorf("%w: response_curve: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ParseStickConfigYAML decodes YAML over the defaults and validates the result.
func ParseStickConfigYAML(data []byte) (StickConfig, error) {
	cfg := DefaultStickConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StickConfig{}, fmt.Errorf("parse stick config: %w", err)
	}
	return cfg, cfg.Validate()
}

// ParseStickConfigTOML decodes TOML over the defaults and validates the result.
func ParseStickConfigTOML(data []byte) (StickConfig, error) {
	cfg := DefaultStickConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return StickConfig{}, fmt.Errorf("parse stick config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadStickConfig reads a .yaml, .yml, or .toml file.
func LoadStickConfig(path string) (StickConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StickConfig{}, fmt.Errorf("load stick config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseStickConfigYAML(data)
	case ".toml":
		return ParseStickConfigTOML(data)
	}
	return StickConfig{}, fmt.Errorf("load stick config: unsupported extension %q", filepath.Ext(path))
}

// SaveStickConfig writes cfg to path, choosing the format from the extension.
func SaveStickConfig(path string, cfg StickConfig) error {
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("save stick config: %w", err)
		}
		data = out
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("save stick config: %w", err)
		}
		data = buf.Bytes()
	default:
		return fmt.Errorf("save stick config: unsupported extension %q", filepath.Ext(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save stick config: %w", err)
	}
	return nil
}
