package world

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/worlds.yaml
var defaultWorldsYAML []byte

// Load loads the world catalog.
// Search order: customPath -> ~/.echoverse/worlds.yaml -> ./configs/worlds.yaml -> embedded default
func Load(customPath string) (Catalog, error) {
	var cat Catalog

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cat, fmt.Errorf("world: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return cat, fmt.Errorf("world: failed to parse %s: %w", customPath, err)
		}
		if err := Validate(cat); err != nil {
			return cat, fmt.Errorf("world: invalid catalog %s: %w", customPath, err)
		}
		return cat, nil
	}

	// Try user config directory
	if userPath := userWorldsPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cat); err == nil && Validate(cat) == nil {
				return cat, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/worlds.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cat); err == nil && Validate(cat) == nil {
			return cat, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWorldsYAML, &cat); err != nil {
		return Builtin(), nil // Fallback to hardcoded if embed fails
	}
	return cat, nil
}

// userWorldsPath returns the path to the user worlds file, or empty if home
// is unavailable.
func userWorldsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".echoverse", "worlds.yaml")
}

// Validate checks catalog sanity: positive footprints, at least one
// adventure level, and every objective and hazard inside its environment.
func Validate(cat Catalog) error {
	if len(cat.Adventure) == 0 {
		return fmt.Errorf("no adventure levels defined")
	}
	envs := append([]Environment{cat.Practice}, cat.Adventure...)
	for i := range envs {
		env := &envs[i]
		if env.ID == "" {
			return fmt.Errorf("environment %d has no id", i)
		}
		if env.HalfExtentX <= 0 || env.HalfExtentZ <= 0 {
			return fmt.Errorf("environment %q has a non-positive footprint", env.ID)
		}
		for _, obj := range env.Objectives {
			if !env.InBounds(obj.Position) {
				return fmt.Errorf("environment %q: objective %q is out of bounds", env.ID, obj.Target)
			}
		}
		for _, hz := range env.Hazards {
			if !env.InBounds(hz.Position) {
				return fmt.Errorf("environment %q: hazard %q is out of bounds", env.ID, hz.Type)
			}
		}
	}
	return nil
}
