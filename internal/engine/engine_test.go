package engine

import (
	"strings"
	"testing"

	"github.com/Vaibhav6780/Echoverse-Project/internal/audio"
	"github.com/Vaibhav6780/Echoverse-Project/internal/config"
	"github.com/Vaibhav6780/Echoverse-Project/internal/core"
	"github.com/Vaibhav6780/Echoverse-Project/internal/world"
)

// testCatalog returns a small deterministic catalog: a 3x3 practice room and
// two 4x4 adventure levels.
func testCatalog() world.Catalog {
	return world.Catalog{
		Practice: world.Environment{
			ID:          "practice",
			Name:        "Practice Room",
			Description: "A quiet padded room.",
			HalfExtentX: 3,
			HalfExtentZ: 3,
			Soundscape:  world.SoundscapePractice,
		},
		Adventure: []world.Environment{
			{
				ID:          "glade",
				Name:        "Glade",
				Description: "A sunlit glade.",
				HalfExtentX: 4,
				HalfExtentZ: 4,
				Soundscape:  world.SoundscapeForest,
				Objectives: []world.Objective{
					{Type: "collect", Target: "bell", Position: core.Vec2{X: 3, Z: 0}, Description: "You found the bell."},
					{Type: "collect", Target: "stone", Position: core.Vec2{X: 0, Z: 3}, Description: "You found the stone."},
				},
				Hazards: []world.Hazard{
					{Type: "pit", Position: core.Vec2{X: -3, Z: 0}, Description: "You fell into a pit."},
				},
				Flavor: []world.FlavorZone{
					{Beyond: 3.5, Text: "You're near the edge."},
				},
			},
			{
				ID:          "cavern",
				Name:        "Cavern",
				Description: "A dripping cavern.",
				HalfExtentX: 4,
				HalfExtentZ: 4,
				Soundscape:  world.SoundscapeCave,
				Objectives: []world.Objective{
					{Type: "collect", Target: "crystal", Position: core.Vec2{X: 0, Z: -3}, Description: "You found the crystal."},
				},
				Hazards: []world.Hazard{
					{Type: "chasm", Position: core.Vec2{X: 3, Z: 3}, Description: "You slipped into a chasm."},
				},
			},
		},
	}
}

func newTestEngine(t *testing.T) (*Engine, *audio.Transcript) {
	t.Helper()
	cfg := config.DefaultEngine()
	cfg.Session.LevelAdvanceDelayMS = 20
	tr := audio.NewTranscript()
	eng := New(cfg, testCatalog(), Deps{Narrator: tr, Sound: tr})
	return eng, tr
}

func spokenContains(tr *audio.Transcript, substr string) bool {
	for _, text := range tr.Spoken() {
		if strings.Contains(text, substr) {
			return true
		}
	}
	return false
}

func do(eng *Engine, kinds ...core.CommandKind) {
	for _, k := range kinds {
		eng.ProcessCommand(core.Known(k))
	}
}

func TestStartPractice(t *testing.T) {
	// Scenario: fresh session started in practice mode
	eng, tr := newTestEngine(t)
	eng.Start(ModePractice)

	if eng.phase != PhasePlaying {
		t.Errorf("expected phase playing, got %s", eng.phase)
	}
	if eng.env == nil || eng.env.Name != "Practice Room" {
		t.Errorf("expected practice room environment, got %+v", eng.env)
	}
	if len(eng.objectives) != 0 {
		t.Errorf("practice room should have no objectives, got %d", len(eng.objectives))
	}
	if !spokenContains(tr, "Practice Room") {
		t.Error("expected a welcome narration naming the environment")
	}
}

func TestStartAdventureArmsAudio(t *testing.T) {
	eng, tr := newTestEngine(t)
	eng.Start(ModeAdventure)

	if eng.env == nil || eng.env.ID != "glade" {
		t.Fatalf("expected level 1 environment, got %+v", eng.env)
	}

	// 2 objectives + 1 hazard armed as positional sources, ambient started
	positional := 0
	ambient := false
	for _, ev := range tr.Events() {
		switch ev.Kind {
		case audio.EventPositional:
			positional++
		case audio.EventAmbientStart:
			ambient = true
		}
	}
	if positional != 3 {
		t.Errorf("expected 3 positional sources armed, got %d", positional)
	}
	if !ambient {
		t.Error("expected ambient loop to start")
	}
}

func TestCommandsRefusedBeforeStart(t *testing.T) {
	eng, tr := newTestEngine(t)

	do(eng, core.CmdGoLeft, core.CmdLookAround, core.CmdStop)

	if eng.pos != (core.Vec2{}) {
		t.Errorf("position mutated without a session: %+v", eng.pos)
	}
	if eng.phase != PhaseIdle {
		t.Errorf("phase changed without a session: %s", eng.phase)
	}
	if !spokenContains(tr, "Start a game first") {
		t.Error("expected a start-a-game-first refusal")
	}
}

func TestUnknownCommandNoMutation(t *testing.T) {
	eng, tr := newTestEngine(t)
	eng.Start(ModeAdventure)
	before := eng.pos
	scoreBefore := eng.score

	eng.ProcessCommand(core.Unknown("dance wildly"))

	if eng.pos != before || eng.score != scoreBefore {
		t.Error("unknown command mutated state")
	}
	if !spokenContains(tr, "dance wildly") {
		t.Error("expected the unrecognized text echoed back")
	}
}

func TestObjectiveCollection(t *testing.T) {
	// Scenario: walk onto an objective's coordinate
	eng, _ := newTestEngine(t)
	eng.Start(ModeAdventure)

	before := len(eng.VisualSnapshot().Objectives)
	do(eng, core.CmdGoRight, core.CmdGoRight) // (2,0): 1.0 from the bell at (3,0)

	if eng.score != 100 {
		t.Errorf("expected score 100 after one objective, got %d", eng.score)
	}
	if len(eng.objectives) != 1 {
		t.Errorf("expected 1 objective remaining, got %d", len(eng.objectives))
	}
	after := len(eng.VisualSnapshot().Objectives)
	if after != before-1 {
		t.Errorf("visual snapshot objectives: expected %d, got %d", before-1, after)
	}
}

func TestHazardGameOver(t *testing.T) {
	// Scenario: last life lost to a hazard
	eng, tr := newTestEngine(t)
	eng.Start(ModeAdventure)
	eng.lives = 1

	do(eng, core.CmdGoLeft, core.CmdGoLeft) // (-2,0): 1.0 from the pit at (-3,0)

	if eng.lives != 0 {
		t.Errorf("expected 0 lives, got %d", eng.lives)
	}
	if eng.phase != PhaseStopped {
		t.Errorf("expected phase stopped after game over, got %s", eng.phase)
	}
	if eng.Outcome() != OutcomeGameOver {
		t.Errorf("expected game_over outcome, got %q", eng.Outcome())
	}
	if !spokenContains(tr, "Game over") {
		t.Error("expected a game-over narration")
	}

	// Movement refused until reset
	posBefore := eng.pos
	do(eng, core.CmdGoLeft)
	if eng.pos != posBefore {
		t.Error("movement accepted after game over")
	}
	if !spokenContains(tr, "Start a game first") {
		t.Error("expected a refusal narration after game over")
	}
}

func TestHazardPenaltyResetsPosition(t *testing.T) {
	eng, tr := newTestEngine(t)
	eng.Start(ModeAdventure)

	do(eng, core.CmdGoLeft, core.CmdGoLeft)

	if eng.lives != 2 {
		t.Errorf("expected 2 lives after one hazard hit, got %d", eng.lives)
	}
	if eng.phase != PhasePlaying {
		t.Errorf("expected to keep playing with lives left, got %s", eng.phase)
	}
	if eng.pos != (core.Vec2{}) {
		t.Errorf("expected position reset to origin, got %+v", eng.pos)
	}
	if !spokenContains(tr, "2 lives left") {
		t.Error("expected a remaining-lives narration")
	}
}

func TestHazardRetriggers(t *testing.T) {
	// Hazards are never removed; every collision costs a life.
	eng, _ := newTestEngine(t)
	eng.Start(ModeAdventure)

	do(eng, core.CmdGoLeft, core.CmdGoLeft) // hit, back to origin
	do(eng, core.CmdGoLeft, core.CmdGoLeft) // hit again

	if eng.lives != 1 {
		t.Errorf("expected 1 life after two hazard hits, got %d", eng.lives)
	}
	if len(eng.env.Hazards) != 1 {
		t.Errorf("hazards must not be removed, got %d", len(eng.env.Hazards))
	}
}

func TestBoundaryRejection(t *testing.T) {
	// Scenario: pushing past the +x half-extent
	eng, tr := newTestEngine(t)
	eng.Start(ModePractice)

	do(eng, core.CmdGoRight, core.CmdGoRight, core.CmdGoRight) // at +3, the edge
	at := eng.pos
	do(eng, core.CmdGoRight) // rejected

	if eng.pos != at {
		t.Errorf("rejected move changed position: %+v -> %+v", at, eng.pos)
	}
	if !spokenContains(tr, "edge") {
		t.Error("expected an edge narration")
	}

	found := false
	for _, ev := range tr.Events() {
		if ev.Kind == audio.EventSound && ev.Text == audio.SoundDanger && ev.Volume == 0.5 {
			found = true
		}
	}
	if !found {
		t.Error("expected the danger sound at half volume on boundary rejection")
	}
}

func TestBoundsNeverExceeded(t *testing.T) {
	eng, _ := newTestEngine(t)
	eng.Start(ModeAdventure)

	// Hammer every wall; position must stay inside the footprint throughout.
	script := []core.CommandKind{}
	for range 12 {
		script = append(script, core.CmdGoRight)
	}
	for range 24 {
		script = append(script, core.CmdGoForward)
	}
	for range 24 {
		script = append(script, core.CmdGoBack)
	}
	for _, k := range script {
		do(eng, k)
		if eng.phase != PhasePlaying {
			break
		}
		if eng.pos.X < -4 || eng.pos.X > 4 || eng.pos.Z < -4 || eng.pos.Z > 4 {
			t.Fatalf("position escaped the footprint: %+v", eng.pos)
		}
	}
}

func TestLookAroundAndHelpIdempotent(t *testing.T) {
	eng, tr := newTestEngine(t)
	eng.Start(ModeAdventure)
	do(eng, core.CmdGoRight)

	pos, score, lives, objs := eng.pos, eng.score, eng.lives, len(eng.objectives)

	for range 5 {
		do(eng, core.CmdLookAround, core.CmdHelp)
	}

	if eng.pos != pos || eng.score != score || eng.lives != lives || len(eng.objectives) != objs {
		t.Error("look around / help mutated session state")
	}
	if !spokenContains(tr, "You can say") {
		t.Error("expected help to narrate the vocabulary")
	}
}

func TestHelpNarratesPositionBeforeStart(t *testing.T) {
	eng, tr := newTestEngine(t)

	do(eng, core.CmdHelp)

	if !spokenContains(tr, "You can say") {
		t.Error("expected help to narrate the vocabulary")
	}
	if !spokenContains(tr, "You are at 0, 0.") {
		t.Error("expected help to narrate the origin before a session starts")
	}
}

func TestToggleModeRefusedWhilePlaying(t *testing.T) {
	eng, tr := newTestEngine(t)
	eng.Start(ModeAdventure)

	do(eng, core.CmdToggleMode)

	if eng.mode != ModeAdventure {
		t.Errorf("mode changed during play: %s", eng.mode)
	}
	if !spokenContains(tr, "can't change modes") {
		t.Error("expected a spoken refusal")
	}
}

func TestToggleModeWhenIdle(t *testing.T) {
	eng, _ := newTestEngine(t)

	do(eng, core.CmdToggleMode)
	if eng.mode != ModePractice {
		t.Errorf("expected practice after toggle, got %s", eng.mode)
	}
	do(eng, core.CmdToggleMode)
	if eng.mode != ModeAdventure {
		t.Errorf("expected adventure after second toggle, got %s", eng.mode)
	}
}

func TestRepeatReplaysLastUtterance(t *testing.T) {
	eng, tr := newTestEngine(t)
	eng.Start(ModeAdventure)

	last := tr.LastSpoken()
	do(eng, core.CmdRepeat)

	spoken := tr.Spoken()
	if len(spoken) < 2 || spoken[len(spoken)-1] != last {
		t.Errorf("expected the last utterance repeated, got %q", spoken[len(spoken)-1])
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	eng, tr := newTestEngine(t)
	eng.Start(ModeAdventure)
	do(eng, core.CmdGoRight, core.CmdGoRight) // collect the bell

	do(eng, core.CmdReset)

	if eng.phase != PhaseIdle {
		t.Errorf("expected idle after reset, got %s", eng.phase)
	}
	if eng.score != 0 || eng.lives != 3 || eng.currentLevel != 1 {
		t.Errorf("reset did not restore defaults: score=%d lives=%d level=%d", eng.score, eng.lives, eng.currentLevel)
	}
	if eng.env != nil || eng.objectives != nil {
		t.Error("reset did not clear the environment")
	}
	if eng.mode != ModeAdventure {
		t.Errorf("reset must preserve mode, got %s", eng.mode)
	}
	if !spokenContains(tr, "Game reset") {
		t.Error("expected a reset narration")
	}
}

func TestStopCommand(t *testing.T) {
	eng, tr := newTestEngine(t)
	eng.Start(ModeAdventure)

	do(eng, core.CmdStop)

	if eng.phase != PhaseStopped {
		t.Errorf("expected stopped, got %s", eng.phase)
	}
	if eng.Outcome() != OutcomeStopped {
		t.Errorf("expected stopped outcome, got %q", eng.Outcome())
	}
	if !spokenContains(tr, "Game stopped") {
		t.Error("expected a stop narration")
	}

	stopped := false
	for _, ev := range tr.Events() {
		if ev.Kind == audio.EventAmbientStop {
			stopped = true
		}
	}
	if !stopped {
		t.Error("expected the ambient loop halted on stop")
	}
}

func TestSessionObjectivesAreCopies(t *testing.T) {
	cat := testCatalog()
	cfg := config.DefaultEngine()
	tr := audio.NewTranscript()
	eng := New(cfg, cat, Deps{Narrator: tr, Sound: tr})

	eng.Start(ModeAdventure)
	do(eng, core.CmdGoRight, core.CmdGoRight) // collect the bell

	if len(cat.Adventure[0].Objectives) != 2 {
		t.Errorf("catalog template mutated: %d objectives", len(cat.Adventure[0].Objectives))
	}

	// Replaying the same level restores the full objective set.
	eng.Reset()
	eng.Start(ModeAdventure)
	if len(eng.objectives) != 2 {
		t.Errorf("expected a fresh objective copy on restart, got %d", len(eng.objectives))
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	eng, _ := newTestEngine(t)
	eng.Start(ModeAdventure)

	snap := eng.VisualSnapshot()
	held := len(snap.Objectives)

	do(eng, core.CmdGoRight, core.CmdGoRight) // collect the bell

	if len(snap.Objectives) != held {
		t.Error("held snapshot changed after an engine mutation")
	}
	if snap.Environment == nil || snap.Environment.Name != "Glade" {
		t.Errorf("snapshot environment wrong: %+v", snap.Environment)
	}
}

func TestStatusSnapshot(t *testing.T) {
	eng, _ := newTestEngine(t)
	eng.Start(ModeAdventure)
	do(eng, core.CmdGoRight, core.CmdGoRight)

	status := eng.StatusSnapshot()
	if !status.IsPlaying || status.Score != 100 || status.Lives != 3 || status.CurrentLevel != 1 {
		t.Errorf("unexpected status: %+v", status)
	}
	if status.Mode != ModeAdventure {
		t.Errorf("unexpected mode: %s", status.Mode)
	}
}
