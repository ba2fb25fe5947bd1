package audio

import "github.com/Vaibhav6780/Echoverse-Project/internal/core"

// NullNarrator discards all narration. Used when no speech backend is
// attached; the engine mutates state normally regardless.
type NullNarrator struct{}

func (NullNarrator) Speak(string, SpeakOptions) {}
func (NullNarrator) RepeatLast()                {}

// NullSink discards all sound requests.
type NullSink struct{}

func (NullSink) PlaySound(string, float64)             {}
func (NullSink) CreatePositionalSound(string, core.Vec2) {}
func (NullSink) PlayPositionalSound(string, float64)   {}
func (NullSink) SetListenerPose(core.Vec2, core.Vec2)  {}
func (NullSink) StartAmbientLoop(string)               {}
func (NullSink) StopAmbientLoop()                      {}

var (
	_ Narrator = NullNarrator{}
	_ Sink     = NullSink{}
)
