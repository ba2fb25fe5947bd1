package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultEngine(t *testing.T) {
	cfg := DefaultEngine()

	if cfg.Movement.StepSize != 1.0 {
		t.Errorf("step size = %v", cfg.Movement.StepSize)
	}
	if cfg.Radii.Interact != 1.5 || cfg.Radii.ObjectiveHint != 3.0 || cfg.Radii.HazardWarn != 2.0 || cfg.Radii.Awareness != 4.0 {
		t.Errorf("radii = %+v", cfg.Radii)
	}
	if cfg.Scoring.Objective != 100 || cfg.Scoring.LevelBonus != 500 {
		t.Errorf("scoring = %+v", cfg.Scoring)
	}
	if cfg.Session.StartingLives != 3 || cfg.Session.LevelAdvanceDelayMS != 3000 {
		t.Errorf("session = %+v", cfg.Session)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Engine
	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultEngine() {
		t.Errorf("embedded default drifted from DefaultEngine():\n%+v\n%+v", cfg, DefaultEngine())
	}
}

func TestLoadEngineCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	body := `movement:
  step_size: 2.5
radii:
  interact: 1.0
scoring:
  objective: 50
session:
  starting_lives: 5
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEngine(path)
	if err != nil {
		t.Fatalf("LoadEngine failed: %v", err)
	}
	if cfg.Movement.StepSize != 2.5 {
		t.Errorf("step size = %v", cfg.Movement.StepSize)
	}
	if cfg.Scoring.Objective != 50 || cfg.Session.StartingLives != 5 {
		t.Errorf("overrides lost: %+v", cfg)
	}
}

func TestLoadEngineMissingCustomPath(t *testing.T) {
	if _, err := LoadEngine(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit path")
	}
}
