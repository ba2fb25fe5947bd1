package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Vaibhav6780/Echoverse-Project/internal/audio"
	"github.com/Vaibhav6780/Echoverse-Project/internal/engine"
	"github.com/Vaibhav6780/Echoverse-Project/internal/normalize"
	"github.com/Vaibhav6780/Echoverse-Project/internal/storage"
)

const maxTranscriptLines = 200

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	narrationStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	soundStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	transcriptTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true)
)

// Model is the command console: a text input feeding the normalizer, a
// narration transcript, and panes rendered from engine snapshots.
type Model struct {
	eng        *engine.Engine
	transcript *audio.Transcript
	store      *storage.Store
	keymap     *KeyMapper

	input  textinput.Model
	lines  []string
	visual engine.VisualSnapshot
	status engine.StatusSnapshot

	width, height int
	everPlayed    bool
	scoreSaved    bool
	quitting      bool
}

// NewModel creates the console model. store may be nil; sessions are then
// not persisted.
func NewModel(eng *engine.Engine, transcript *audio.Transcript, store *storage.Store, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command, e.g. start game"
	ti.Prompt = "> "
	ti.CharLimit = 80
	ti.Focus()

	return Model{
		eng:        eng,
		transcript: transcript,
		store:      store,
		keymap:     NewKeyMapper(),
		input:      ti,
		visual:     eng.VisualSnapshot(),
		status:     eng.StatusSnapshot(),
		width:      width,
		height:     height,
	}
}

// Init starts the input cursor and the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// Update handles input and refresh messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.saveIfFinished()
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line != "" {
				m.eng.ProcessCommand(normalize.Transcript(line))
			}
			m.refresh()
			return m, nil
		}
		if cmd, ok := m.keymap.MapKey(msg); ok {
			m.eng.ProcessCommand(cmd)
			m.refresh()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.refresh()
		return m, tickCmd()
	}

	return m, nil
}

// refresh pulls fresh snapshots, drains new sink events into the transcript,
// and persists the session once it finishes.
func (m *Model) refresh() {
	m.visual = m.eng.VisualSnapshot()
	m.status = m.eng.StatusSnapshot()

	for _, ev := range m.transcript.Drain() {
		switch ev.Kind {
		case audio.EventSpeak:
			m.lines = append(m.lines, narrationStyle.Render(ev.Text))
		case audio.EventSound:
			m.lines = append(m.lines, soundStyle.Render(fmt.Sprintf("♪ %s (%.0f%%)", ev.Text, ev.Volume*100)))
		case audio.EventAmbientStart:
			m.lines = append(m.lines, soundStyle.Render("♪ ambient: "+ev.Text))
		case audio.EventAmbientStop:
			m.lines = append(m.lines, soundStyle.Render("♪ ambient stopped"))
		}
	}
	if len(m.lines) > maxTranscriptLines {
		m.lines = m.lines[len(m.lines)-maxTranscriptLines:]
	}

	if m.status.IsPlaying {
		m.everPlayed = true
		m.scoreSaved = false
		return
	}
	m.saveIfFinished()
}

// saveIfFinished records the session result once per finished session.
func (m *Model) saveIfFinished() {
	if m.store == nil || m.scoreSaved || !m.everPlayed {
		return
	}
	outcome := m.eng.Outcome()
	if outcome == engine.OutcomeNone {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveSession(storage.SessionRecord{
		Mode:         string(m.status.Mode),
		Outcome:      string(outcome),
		Score:        m.status.Score,
		LevelReached: m.status.CurrentLevel,
	})
	m.scoreSaved = true
	m.everPlayed = false
}

// View renders the console layout.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(" Echoverse ") + "  " + statusStyle.Render(RenderStatus(m.status))

	mapPane := RenderMap(m.visual)

	transcriptHeight := m.height - lipgloss.Height(mapPane) - 6
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}
	start := len(m.lines) - transcriptHeight
	if start < 0 {
		start = 0
	}
	transcriptPane := transcriptTitle.Render("Narration") + "\n" + strings.Join(m.lines[start:], "\n")

	help := helpStyle.Render("arrows: move · tab: look around · f1: help · esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		mapPane,
		"",
		transcriptPane,
		"",
		m.input.View(),
		help,
	)
}

// Run starts the console in the current terminal.
func Run(eng *engine.Engine, transcript *audio.Transcript, store *storage.Store, width, height int) error {
	model := NewModel(eng, transcript, store, width, height)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
