package engine

import (
	"fmt"

	"github.com/Vaibhav6780/Echoverse-Project/internal/audio"
	"github.com/Vaibhav6780/Echoverse-Project/internal/core"
	"github.com/Vaibhav6780/Echoverse-Project/internal/world"
)

// Positional sound ids are stable per level so triggers address the sources
// armed at level start.
func objectiveSoundID(obj world.Objective) string {
	return "objective:" + obj.Target
}

func hazardSoundID(i int, hz world.Hazard) string {
	return fmt.Sprintf("hazard:%s:%d", hz.Type, i)
}

// checkInteractionsLocked runs after every accepted move. Objectives first,
// then hazards, each in catalog order. A hazard penalty may reset the
// position or end the session mid-scan; distances are always measured
// against the current position.
func (e *Engine) checkInteractionsLocked() {
	for i := 0; i < len(e.objectives); {
		obj := e.objectives[i]
		d := e.pos.Dist(obj.Position)
		switch {
		case d <= e.cfg.Radii.Interact:
			e.collectObjectiveLocked(i)
			if e.phase != PhasePlaying {
				return
			}
			// Slice shrank; the next objective now sits at i.
		case d <= e.cfg.Radii.ObjectiveHint:
			e.sound.PlayPositionalSound(objectiveSoundID(obj), e.cfg.Volumes.Hint)
			i++
		default:
			i++
		}
	}

	for i, hz := range e.env.Hazards {
		d := e.pos.Dist(hz.Position)
		switch {
		case d <= e.cfg.Radii.Interact:
			e.hitHazardLocked(hz)
			if e.phase != PhasePlaying {
				return
			}
		case d <= e.cfg.Radii.HazardWarn:
			e.sound.PlayPositionalSound(hazardSoundID(i, hz), e.cfg.Volumes.Warn)
		}
	}
}

// collectObjectiveLocked fires a one-time objective: success sound,
// narration, score, removal, and the level-completion check.
func (e *Engine) collectObjectiveLocked(i int) {
	obj := e.objectives[i]
	e.sound.PlaySound(audio.SoundSuccess, e.cfg.Volumes.Event)
	e.score += e.cfg.Scoring.Objective
	e.objectives = append(e.objectives[:i], e.objectives[i+1:]...)
	e.logger.Info("objective collected", "target", obj.Target, "score", e.score, "remaining", len(e.objectives))

	if len(e.objectives) == 0 {
		e.speak(fmt.Sprintf("%s Score %d.", obj.Description, e.score))
		e.completeLevelLocked()
		return
	}
	// The head of the remaining list is the current objective, used only for
	// narration context; any remaining objective can be collected in any order.
	next := e.objectives[0]
	e.speak(fmt.Sprintf("%s Score %d. Next: %s.", obj.Description, e.score, next.Target))
}

// hitHazardLocked applies a repeatable hazard penalty. Hazards are never
// removed; every collision independently costs a life.
func (e *Engine) hitHazardLocked(hz world.Hazard) {
	e.sound.PlaySound(audio.SoundDanger, e.cfg.Volumes.Event)
	e.lives--
	e.logger.Info("hazard triggered", "type", hz.Type, "lives", e.lives)

	if e.lives <= 0 {
		e.lives = 0
		e.speak(fmt.Sprintf("%s Game over. Final score %d.", hz.Description, e.score))
		e.outcome = OutcomeGameOver
		e.haltLocked()
		e.emitLocked()
		return
	}

	e.pos = core.Vec2{}
	e.dir = core.DirForward
	e.sound.SetListenerPose(e.pos, e.dir)
	e.speak(fmt.Sprintf("%s You have %d lives left. You're back at the start.", hz.Description, e.lives))
}
