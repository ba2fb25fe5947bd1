// Package config provides YAML-based tuning for the game engine.
// All values have fixed defaults matching the designed gameplay; a worlds or
// engine file only needs to override what it changes.
package config

// Engine contains all tunable parameters of the game engine.
type Engine struct {
	Movement Movement `yaml:"movement"`
	Radii    Radii    `yaml:"radii"`
	Scoring  Scoring  `yaml:"scoring"`
	Session  Session  `yaml:"session"`
	Volumes  Volumes  `yaml:"volumes"`
}

// Movement defines step parameters.
type Movement struct {
	StepSize float64 `yaml:"step_size"`
}

// Radii defines the proximity thresholds, in world units.
type Radii struct {
	Interact      float64 `yaml:"interact"`       // triggered interaction
	ObjectiveHint float64 `yaml:"objective_hint"` // soft positional hint
	HazardWarn    float64 `yaml:"hazard_warn"`    // positional warning
	Awareness     float64 `yaml:"awareness"`      // look-around cue
}

// Scoring defines score awards.
type Scoring struct {
	Objective  int `yaml:"objective"`
	LevelBonus int `yaml:"level_bonus"`
}

// Session defines session lifecycle parameters.
type Session struct {
	StartingLives       int `yaml:"starting_lives"`
	LevelAdvanceDelayMS int `yaml:"level_advance_delay_ms"`
}

// Volumes defines playback volumes for engine-triggered sounds, in [0, 1].
type Volumes struct {
	Step  float64 `yaml:"step"`
	Edge  float64 `yaml:"edge"`
	Hint  float64 `yaml:"hint"`
	Warn  float64 `yaml:"warn"`
	Event float64 `yaml:"event"`
}
