package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngine returns the default engine tuning.
func DefaultEngine() Engine {
	return Engine{
		Movement: Movement{
			StepSize: 1.0,
		},
		Radii: Radii{
			Interact:      1.5,
			ObjectiveHint: 3.0,
			HazardWarn:    2.0,
			Awareness:     4.0,
		},
		Scoring: Scoring{
			Objective:  100,
			LevelBonus: 500,
		},
		Session: Session{
			StartingLives:       3,
			LevelAdvanceDelayMS: 3000,
		},
		Volumes: Volumes{
			Step:  0.8,
			Edge:  0.5,
			Hint:  0.3,
			Warn:  0.4,
			Event: 1.0,
		},
	}
}
