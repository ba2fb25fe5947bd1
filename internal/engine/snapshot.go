package engine

import "github.com/Vaibhav6780/Echoverse-Project/internal/core"

// VisualEnvironment describes the active environment for the renderer.
type VisualEnvironment struct {
	Name        string
	HalfExtentX float64
	HalfExtentZ float64
	Soundscape  string
}

// VisualEntity is a positioned objective or hazard.
type VisualEntity struct {
	Position    core.Vec2
	Description string
}

// VisualSnapshot is an independent copy of everything a renderer needs.
// Holding one never aliases engine-owned state.
type VisualSnapshot struct {
	PlayerPosition  core.Vec2
	PlayerDirection core.Vec2
	Environment     *VisualEnvironment // nil before a session starts
	Objectives      []VisualEntity
	Hazards         []VisualEntity
}

// StatusSnapshot carries the counters for UI badges and logs.
type StatusSnapshot struct {
	Mode         Mode
	IsPlaying    bool
	Score        int
	Lives        int
	CurrentLevel int
}

// VisualSnapshot returns a copy of the current visual state.
func (e *Engine) VisualSnapshot() VisualSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visualLocked()
}

// StatusSnapshot returns a copy of the current status counters.
func (e *Engine) StatusSnapshot() StatusSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statusLocked()
}

func (e *Engine) visualLocked() VisualSnapshot {
	snap := VisualSnapshot{
		PlayerPosition:  e.pos,
		PlayerDirection: e.dir,
	}
	if e.env == nil {
		return snap
	}
	snap.Environment = &VisualEnvironment{
		Name:        e.env.Name,
		HalfExtentX: e.env.HalfExtentX,
		HalfExtentZ: e.env.HalfExtentZ,
		Soundscape:  string(e.env.Soundscape),
	}
	snap.Objectives = make([]VisualEntity, len(e.objectives))
	for i, obj := range e.objectives {
		snap.Objectives[i] = VisualEntity{Position: obj.Position, Description: obj.Description}
	}
	snap.Hazards = make([]VisualEntity, len(e.env.Hazards))
	for i, hz := range e.env.Hazards {
		snap.Hazards[i] = VisualEntity{Position: hz.Position, Description: hz.Description}
	}
	return snap
}

func (e *Engine) statusLocked() StatusSnapshot {
	return StatusSnapshot{
		Mode:         e.mode,
		IsPlaying:    e.phase == PhasePlaying,
		Score:        e.score,
		Lives:        e.lives,
		CurrentLevel: e.currentLevel,
	}
}

// emitLocked pushes fresh snapshot copies to the listener, if any.
func (e *Engine) emitLocked() {
	if e.listener == nil {
		return
	}
	e.listener.VisualChanged(e.visualLocked())
	e.listener.StatusChanged(e.statusLocked())
}
