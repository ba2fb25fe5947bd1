package audio

import (
	"sync"

	"github.com/Vaibhav6780/Echoverse-Project/internal/core"
)

// EventKind classifies a recorded sink event.
type EventKind string

const (
	EventSpeak        EventKind = "speak"
	EventSound        EventKind = "sound"
	EventPositional   EventKind = "positional"
	EventListenerPose EventKind = "listener"
	EventAmbientStart EventKind = "ambient_start"
	EventAmbientStop  EventKind = "ambient_stop"
)

// Event is one recorded narration or sound request.
type Event struct {
	Kind   EventKind
	Text   string  // narration text, sound name, positional id or soundscape
	Volume float64 // for sound events
	Pos    core.Vec2
}

// Transcript is a Narrator and Sink that records every request. It backs the
// terminal front-end (which prints narration instead of speaking it) and the
// engine tests. Safe for concurrent use; the engine's level-advance timer
// fires on its own goroutine.
type Transcript struct {
	mu       sync.Mutex
	events   []Event
	consumed int
	lastText string

	// Notify, if set, is called outside state mutation order guarantees for
	// every recorded event. Set it before handing the transcript to the
	// engine.
	Notify func(Event)
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) record(ev Event) {
	t.mu.Lock()
	t.events = append(t.events, ev)
	notify := t.Notify
	t.mu.Unlock()
	if notify != nil {
		notify(ev)
	}
}

// Speak records a narration request and remembers its text for RepeatLast.
func (t *Transcript) Speak(text string, _ SpeakOptions) {
	t.mu.Lock()
	t.lastText = text
	t.mu.Unlock()
	t.record(Event{Kind: EventSpeak, Text: text})
}

// RepeatLast re-records the most recent utterance, if any.
func (t *Transcript) RepeatLast() {
	t.mu.Lock()
	last := t.lastText
	t.mu.Unlock()
	if last == "" {
		return
	}
	t.record(Event{Kind: EventSpeak, Text: last})
}

func (t *Transcript) PlaySound(name string, volume float64) {
	t.record(Event{Kind: EventSound, Text: name, Volume: volume})
}

func (t *Transcript) CreatePositionalSound(id string, pos core.Vec2) {
	t.record(Event{Kind: EventPositional, Text: id, Pos: pos})
}

func (t *Transcript) PlayPositionalSound(id string, volume float64) {
	t.record(Event{Kind: EventPositional, Text: id, Volume: volume})
}

func (t *Transcript) SetListenerPose(pos, _ core.Vec2) {
	t.record(Event{Kind: EventListenerPose, Pos: pos})
}

func (t *Transcript) StartAmbientLoop(soundscape string) {
	t.record(Event{Kind: EventAmbientStart, Text: soundscape})
}

func (t *Transcript) StopAmbientLoop() {
	t.record(Event{Kind: EventAmbientStop})
}

// Events returns a copy of all recorded events.
func (t *Transcript) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Drain returns events recorded since the previous Drain call.
func (t *Transcript) Drain() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.events)-t.consumed)
	copy(out, t.events[t.consumed:])
	t.consumed = len(t.events)
	return out
}

// Spoken returns all narration texts in order.
func (t *Transcript) Spoken() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []string
	for _, ev := range t.events {
		if ev.Kind == EventSpeak {
			out = append(out, ev.Text)
		}
	}
	return out
}

// LastSpoken returns the most recent narration text, or "".
func (t *Transcript) LastSpoken() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastText
}

// Reset clears all recorded events.
func (t *Transcript) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = nil
	t.consumed = 0
	t.lastText = ""
}

var (
	_ Narrator = (*Transcript)(nil)
	_ Sink     = (*Transcript)(nil)
)
