// Package normalize maps raw player input — voice transcripts or typed text —
// to the fixed command vocabulary. It sits upstream of the engine: the engine
// only ever sees normalized commands, never free text.
package normalize

import (
	"strings"

	"github.com/Vaibhav6780/Echoverse-Project/internal/core"
)

// synonyms maps cleaned phrases to command kinds, beyond the canonical
// vocabulary itself.
var synonyms = map[string]core.CommandKind{
	"start":        core.CmdStart,
	"begin":        core.CmdStart,
	"new game":     core.CmdStart,
	"play":         core.CmdStart,
	"left":         core.CmdGoLeft,
	"move left":    core.CmdGoLeft,
	"walk left":    core.CmdGoLeft,
	"right":        core.CmdGoRight,
	"move right":   core.CmdGoRight,
	"walk right":   core.CmdGoRight,
	"forward":      core.CmdGoForward,
	"ahead":        core.CmdGoForward,
	"go ahead":     core.CmdGoForward,
	"move forward": core.CmdGoForward,
	"walk forward": core.CmdGoForward,
	"back":         core.CmdGoBack,
	"backward":     core.CmdGoBack,
	"go backward":  core.CmdGoBack,
	"move back":    core.CmdGoBack,
	"look":         core.CmdLookAround,
	"where am i":   core.CmdLookAround,
	"listen":       core.CmdLookAround,
	"what can i do": core.CmdHelp,
	"commands":      core.CmdHelp,
	"repeat that":   core.CmdRepeat,
	"say again":     core.CmdRepeat,
	"say that again": core.CmdRepeat,
	"again":          core.CmdRepeat,
	"switch mode":    core.CmdToggleMode,
	"change mode":    core.CmdToggleMode,
	"restart":        core.CmdReset,
	"start over":     core.CmdReset,
	"reset":          core.CmdReset,
	"stop":           core.CmdStop,
	"end game":       core.CmdStop,
}

// Transcript normalizes a raw transcript or typed line into a Command.
// Cleaning lowercases, trims, collapses whitespace and strips trailing
// punctuation; the canonical vocabulary is tried before synonyms. Anything
// unmatched becomes an Unknown command carrying the original text.
func Transcript(raw string) core.Command {
	cleaned := clean(raw)
	if cleaned == "" {
		return core.Unknown(raw)
	}
	if cmd := core.ParseCommand(cleaned); cmd.Kind != core.CmdUnknown {
		return cmd
	}
	if kind, ok := synonyms[cleaned]; ok {
		return core.Known(kind)
	}
	return core.Unknown(raw)
}

func clean(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimRight(s, ".!?")
	return strings.Join(strings.Fields(s), " ")
}
