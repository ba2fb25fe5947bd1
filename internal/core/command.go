package core

// CommandKind identifies one entry of the fixed command vocabulary.
// The set is closed: the engine switches exhaustively over it, and anything
// the upstream normalizer cannot map lands in CmdUnknown with the raw text
// preserved for the "didn't understand" echo.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdStart
	CmdGoLeft
	CmdGoRight
	CmdGoForward
	CmdGoBack
	CmdLookAround
	CmdHelp
	CmdRepeat
	CmdToggleMode
	CmdReset
	CmdStop
)

// Command is a normalized player command. For CmdUnknown, Text carries the
// unrecognized input; for known kinds it carries the canonical phrase.
type Command struct {
	Kind CommandKind
	Text string
}

// phrases maps each known kind to its canonical spoken phrase.
var phrases = map[CommandKind]string{
	CmdStart:      "start game",
	CmdGoLeft:     "go left",
	CmdGoRight:    "go right",
	CmdGoForward:  "go forward",
	CmdGoBack:     "go back",
	CmdLookAround: "look around",
	CmdHelp:       "help",
	CmdRepeat:     "repeat",
	CmdToggleMode: "toggle mode",
	CmdReset:      "reset game",
	CmdStop:       "stop game",
}

// byPhrase is the inverse of phrases, built once at init.
var byPhrase = func() map[string]CommandKind {
	m := make(map[string]CommandKind, len(phrases))
	for k, p := range phrases {
		m[p] = k
	}
	return m
}()

// String returns the canonical phrase for the kind, or "unknown".
func (k CommandKind) String() string {
	if p, ok := phrases[k]; ok {
		return p
	}
	return "unknown"
}

// Known creates a Command of the given kind with its canonical phrase.
func Known(kind CommandKind) Command {
	return Command{Kind: kind, Text: kind.String()}
}

// Unknown creates a Command carrying unrecognized input text.
func Unknown(text string) Command {
	return Command{Kind: CmdUnknown, Text: text}
}

// ParseCommand maps an exact vocabulary phrase to a Command.
// Anything else becomes CmdUnknown; synonym resolution is the normalizer's
// job upstream, not this function's.
func ParseCommand(s string) Command {
	if kind, ok := byPhrase[s]; ok {
		return Known(kind)
	}
	return Unknown(s)
}

// Vocabulary returns the canonical phrases in a stable order, for help text.
func Vocabulary() []string {
	order := []CommandKind{
		CmdStart, CmdGoLeft, CmdGoRight, CmdGoForward, CmdGoBack,
		CmdLookAround, CmdHelp, CmdRepeat, CmdToggleMode, CmdReset, CmdStop,
	}
	out := make([]string, len(order))
	for i, k := range order {
		out[i] = k.String()
	}
	return out
}
