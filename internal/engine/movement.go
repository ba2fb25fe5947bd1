package engine

import (
	"fmt"

	"github.com/Vaibhav6780/Echoverse-Project/internal/audio"
	"github.com/Vaibhav6780/Echoverse-Project/internal/core"
)

// moveLocked applies one unit step. An out-of-bounds candidate is fully
// rejected with the position untouched; no axis is clamped or slid.
func (e *Engine) moveLocked(kind core.CommandKind) {
	var heading core.Vec2
	var label string
	switch kind {
	case core.CmdGoLeft:
		heading, label = core.DirLeft, "left"
	case core.CmdGoRight:
		heading, label = core.DirRight, "right"
	case core.CmdGoForward:
		heading, label = core.DirForward, "forward"
	case core.CmdGoBack:
		heading, label = core.DirBack, "back"
	default:
		return
	}

	candidate := e.pos.Add(heading.Scale(e.cfg.Movement.StepSize))
	if !e.env.InBounds(candidate) {
		e.logger.Info("move rejected at boundary", "direction", label, "x", e.pos.X, "z", e.pos.Z)
		e.sound.PlaySound(audio.SoundDanger, e.cfg.Volumes.Edge)
		e.speak(fmt.Sprintf("You've reached the edge. You can't go %s.", label))
		return
	}

	e.pos = candidate
	e.dir = heading
	e.sound.PlaySound(audio.SoundStep, e.cfg.Volumes.Step)
	e.sound.SetListenerPose(e.pos, e.dir)

	e.checkInteractionsLocked()

	// Interactions may have ended the session; the terminal narration has
	// already been spoken in that case.
	if e.phase == PhasePlaying {
		text := fmt.Sprintf("You moved %s.", label)
		if flavor := e.env.FlavorAt(e.pos); flavor != "" {
			text += " " + flavor
		}
		e.speak(text)
	}
	e.emitLocked()
}
