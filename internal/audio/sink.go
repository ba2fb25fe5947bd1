// Package audio defines the narration and sound sink contracts the engine
// speaks to. How text becomes speech and how buffers become sound is a
// presentation concern outside this module; the engine only issues
// fire-and-forget requests and never blocks on playback.
package audio

import "github.com/Vaibhav6780/Echoverse-Project/internal/core"

// Named sounds the engine triggers. The sink decides what they sound like.
const (
	SoundStep    = "step"
	SoundSuccess = "success"
	SoundDanger  = "danger"
	SoundEcho    = "echo"
)

// SpeakOptions modifies a narration request.
type SpeakOptions struct {
	// Interrupt cancels any in-flight utterance before speaking.
	Interrupt bool
}

// Narrator converts narration requests into speech.
type Narrator interface {
	Speak(text string, opts SpeakOptions)

	// RepeatLast replays the most recent utterance. The narrator holds the
	// text; the engine keeps no copy.
	RepeatLast()
}

// Sink plays named and positional sounds. Positional sources are bound to a
// world coordinate and attenuated by listener distance on the sink's side.
type Sink interface {
	PlaySound(name string, volume float64)
	CreatePositionalSound(id string, pos core.Vec2)
	PlayPositionalSound(id string, volume float64)
	SetListenerPose(pos, forward core.Vec2)
	StartAmbientLoop(soundscape string)
	StopAmbientLoop()
}
