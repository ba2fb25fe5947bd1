package engine

import (
	"fmt"
	"time"

	"github.com/Vaibhav6780/Echoverse-Project/internal/core"
	"github.com/Vaibhav6780/Echoverse-Project/internal/world"
)

// startLocked transitions Idle/Stopped -> Playing. When keepProgress is set
// (level auto-advance) score, lives and level survive; otherwise a stopped
// session's counters carry over from the previous reset.
func (e *Engine) startLocked(mode Mode, keepProgress bool) {
	// Resolve the environment before touching any session state, so a
	// refused start leaves score, lives and outcome exactly as they were.
	var env *world.Environment
	var welcome string
	if mode == ModePractice {
		env = e.catalog.Practice.Clone()
		welcome = fmt.Sprintf("Welcome to the %s. %s", env.Name, env.Description)
	} else {
		var ok bool
		env, ok = e.catalog.Level(e.currentLevel)
		if !ok {
			// Campaign already finished; only reset rewinds currentLevel.
			e.speak("You've finished the adventure. Say reset game to play again.")
			return
		}
		welcome = fmt.Sprintf("Level %d: %s. %s", e.currentLevel, env.Name, env.Description)
	}

	e.generation++
	e.cancelAdvanceLocked()

	e.mode = mode
	e.phase = PhasePlaying
	e.outcome = OutcomeNone
	e.pos = core.Vec2{}
	e.dir = core.DirForward
	e.env = env

	// currentLevel deliberately survives: a fresh start resumes the
	// campaign at the level reached, only reset rewinds it.
	if !keepProgress {
		e.score = 0
		e.lives = e.cfg.Session.StartingLives
	}

	// Session objectives are an independent copy; catalog templates are
	// never mutated in play.
	e.objectives = append([]world.Objective(nil), e.env.Objectives...)

	// Arm positional audio for everything in the level.
	for _, obj := range e.objectives {
		e.sound.CreatePositionalSound(objectiveSoundID(obj), obj.Position)
	}
	for i, hz := range e.env.Hazards {
		e.sound.CreatePositionalSound(hazardSoundID(i, hz), hz.Position)
	}
	e.sound.SetListenerPose(e.pos, e.dir)
	e.sound.StartAmbientLoop(string(e.env.Soundscape))

	e.logger.Info("session started", "mode", string(mode), "level", e.currentLevel, "environment", e.env.ID)
	e.speak(welcome)
	e.emitLocked()
}

// haltLocked transitions Playing -> Stopped and silences the world.
func (e *Engine) haltLocked() {
	e.phase = PhaseStopped
	e.cancelAdvanceLocked()
	e.sound.StopAmbientLoop()
	e.logger.Info("session stopped", "outcome", string(e.outcome), "score", e.score)
}

// resetLocked returns to Idle from any state. Mode is preserved; score,
// lives and level go back to defaults.
func (e *Engine) resetLocked() {
	e.generation++
	e.cancelAdvanceLocked()

	e.phase = PhaseIdle
	e.outcome = OutcomeNone
	e.score = 0
	e.lives = e.cfg.Session.StartingLives
	e.currentLevel = 1
	e.pos = core.Vec2{}
	e.dir = core.DirForward
	e.env = nil
	e.objectives = nil
	e.sound.StopAmbientLoop()

	e.logger.Info("session reset")
	e.speak("Game reset. Say start game when you're ready.")
	e.emitLocked()
}

// completeLevelLocked fires exactly once, when the objective list empties
// while playing.
func (e *Engine) completeLevelLocked() {
	e.score += e.cfg.Scoring.LevelBonus
	e.currentLevel++
	e.logger.Info("level complete", "next_level", e.currentLevel, "score", e.score)

	if e.currentLevel > e.catalog.LevelCount() {
		e.speak(fmt.Sprintf("You cleared every level. You won! Final score %d.", e.score))
		e.outcome = OutcomeWon
		e.haltLocked()
		e.emitLocked()
		return
	}

	e.speak(fmt.Sprintf("Level complete! Bonus %d points. Score %d. Get ready for the next level.", e.cfg.Scoring.LevelBonus, e.score))
	e.scheduleAdvanceLocked()
	e.emitLocked()
}

// scheduleAdvanceLocked defers the next level's start sequence. The callback
// captures the current generation; a reset or a new start bumps it, turning
// the stale callback into a no-op.
func (e *Engine) scheduleAdvanceLocked() {
	gen := e.generation
	delay := time.Duration(e.cfg.Session.LevelAdvanceDelayMS) * time.Millisecond
	e.pendingAdvance = time.AfterFunc(delay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.generation != gen || e.phase != PhasePlaying {
			return
		}
		e.startLocked(ModeAdventure, true)
	})
}

// cancelAdvanceLocked stops a pending level advance, if any. Cancellation is
// best-effort; the generation check is the real guard.
func (e *Engine) cancelAdvanceLocked() {
	if e.pendingAdvance != nil {
		e.pendingAdvance.Stop()
		e.pendingAdvance = nil
	}
}
