// Package engine implements the authoritative game state machine and spatial
// interaction logic: command dispatch, movement against world boundaries,
// objective and hazard proximity, score/life/level bookkeeping, and the
// narration and audio requests that result. It owns the session exclusively;
// external consumers only ever see snapshot copies.
package engine

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Vaibhav6780/Echoverse-Project/internal/audio"
	"github.com/Vaibhav6780/Echoverse-Project/internal/config"
	"github.com/Vaibhav6780/Echoverse-Project/internal/core"
	"github.com/Vaibhav6780/Echoverse-Project/internal/world"
)

// Mode selects between the safe practice room and the adventure campaign.
type Mode string

const (
	ModePractice  Mode = "practice"
	ModeAdventure Mode = "adventure"
)

// Phase is the session state machine's current state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseStopped
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Outcome records how the last session ended.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeStopped  Outcome = "stopped"
	OutcomeGameOver Outcome = "game_over"
	OutcomeWon      Outcome = "won"
)

// Listener receives snapshot copies after every state-affecting operation.
// Implementations must not call back into the engine from these methods.
type Listener interface {
	VisualChanged(VisualSnapshot)
	StatusChanged(StatusSnapshot)
}

// Deps are the engine's external collaborators. Any field may be nil; a
// missing sink is a no-op, never a gate on game-state correctness.
type Deps struct {
	Narrator audio.Narrator
	Sound    audio.Sink
	Logger   *log.Logger
	Listener Listener
}

// Engine owns the game session. Commands are processed one at a time to
// completion under the mutex; the only other goroutine that touches state is
// the level-advance timer, which takes the same lock and is guarded by the
// session generation counter.
type Engine struct {
	mu      sync.Mutex
	cfg     config.Engine
	catalog world.Catalog

	narrator audio.Narrator
	sound    audio.Sink
	logger   *log.Logger
	listener Listener

	mode         Mode
	phase        Phase
	outcome      Outcome
	score        int
	lives        int
	currentLevel int
	pos          core.Vec2
	dir          core.Vec2
	env          *world.Environment
	objectives   []world.Objective
	lastCommand  string

	// generation invalidates scheduled continuations: any deferred callback
	// captured an older value and must no-op once it differs.
	generation     uint64
	pendingAdvance *time.Timer
}

// New creates an engine in the Idle phase with adventure mode selected.
func New(cfg config.Engine, catalog world.Catalog, deps Deps) *Engine {
	if deps.Narrator == nil {
		deps.Narrator = audio.NullNarrator{}
	}
	if deps.Sound == nil {
		deps.Sound = audio.NullSink{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	return &Engine{
		cfg:          cfg,
		catalog:      catalog,
		narrator:     deps.Narrator,
		sound:        deps.Sound,
		logger:       deps.Logger,
		listener:     deps.Listener,
		mode:         ModeAdventure,
		phase:        PhaseIdle,
		lives:        cfg.Session.StartingLives,
		currentLevel: 1,
		dir:          core.DirForward,
	}
}

// alwaysAllowed reports whether a command is legal outside the Playing phase.
func alwaysAllowed(kind core.CommandKind) bool {
	switch kind {
	case core.CmdStart, core.CmdHelp, core.CmdToggleMode, core.CmdReset:
		return true
	}
	return false
}

// ProcessCommand interprets one normalized command to completion. Unknown
// commands and commands issued in the wrong phase are narrated refusals with
// no state mutation.
func (e *Engine) ProcessCommand(cmd core.Command) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastCommand = cmd.Text
	e.logger.Info("command received", "command", cmd.Kind.String(), "text", cmd.Text, "phase", e.phase.String())

	if e.phase != PhasePlaying && !alwaysAllowed(cmd.Kind) {
		e.speak("Start a game first. Say start game to begin.")
		return
	}

	switch cmd.Kind {
	case core.CmdStart:
		e.startLocked(e.mode, false)
	case core.CmdGoLeft, core.CmdGoRight, core.CmdGoForward, core.CmdGoBack:
		e.moveLocked(cmd.Kind)
	case core.CmdLookAround:
		e.lookAroundLocked()
	case core.CmdHelp:
		e.helpLocked()
	case core.CmdRepeat:
		e.narrator.RepeatLast()
	case core.CmdToggleMode:
		e.toggleModeLocked()
	case core.CmdReset:
		e.resetLocked()
	case core.CmdStop:
		e.outcome = OutcomeStopped
		e.haltLocked()
		e.speak(fmt.Sprintf("Game stopped. Final score %d.", e.score))
		e.emitLocked()
	case core.CmdUnknown:
		e.logger.Warn("unknown command", "text", cmd.Text)
		e.speak(fmt.Sprintf("I didn't understand %q. Say help for a list of commands.", cmd.Text))
	}
}

// ProcessText parses an exact vocabulary phrase and processes it. Synonym
// resolution belongs to the upstream normalizer.
func (e *Engine) ProcessText(s string) {
	e.ProcessCommand(core.ParseCommand(s))
}

// Start begins a session in the given mode from Idle or Stopped.
func (e *Engine) Start(mode Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startLocked(mode, false)
}

// Reset returns the engine to Idle and restores score, lives and level.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

// Outcome reports how the last session ended, or OutcomeNone.
func (e *Engine) Outcome() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.outcome
}

// speak issues a fire-and-forget narration request.
func (e *Engine) speak(text string) {
	e.narrator.Speak(text, audio.SpeakOptions{})
}

// helpLocked narrates the command vocabulary and the rounded position. The
// position is always included; before a session starts it is the origin.
func (e *Engine) helpLocked() {
	text := "You can say: " + strings.Join(core.Vocabulary(), ", ") + "."
	text += fmt.Sprintf(" You are at %.0f, %.0f.", e.pos.X, e.pos.Z)
	e.speak(text)
}

// lookAroundLocked narrates the environment and cues nearby objectives.
// Never mutates score, lives, position or objectives.
func (e *Engine) lookAroundLocked() {
	text := e.env.Description
	nearby := false
	for _, obj := range e.objectives {
		if e.pos.Dist(obj.Position) <= e.cfg.Radii.Awareness {
			nearby = true
			break
		}
	}
	if nearby {
		text += " Something important is nearby."
		e.sound.PlaySound(audio.SoundEcho, e.cfg.Volumes.Hint)
	}
	e.speak(text)
}

// toggleModeLocked flips practice and adventure; refused while playing.
func (e *Engine) toggleModeLocked() {
	if e.phase == PhasePlaying {
		e.speak("You can't change modes during a game. Stop the game first.")
		return
	}
	if e.mode == ModePractice {
		e.mode = ModeAdventure
	} else {
		e.mode = ModePractice
	}
	e.speak(fmt.Sprintf("Mode set to %s.", e.mode))
	e.emitLocked()
}
