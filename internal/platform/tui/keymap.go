package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vaibhav6780/Echoverse-Project/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game commands.
// This is the keyboard half of the upstream command normalizer: the engine
// never sees raw key codes. Letters are left to the text input.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a command.
// Returns ok=false for keys that belong to the text input.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (cmd core.Command, ok bool) {
	switch msg.String() {
	case "up":
		return core.Known(core.CmdGoForward), true
	case "down":
		return core.Known(core.CmdGoBack), true
	case "left":
		return core.Known(core.CmdGoLeft), true
	case "right":
		return core.Known(core.CmdGoRight), true
	case "tab":
		return core.Known(core.CmdLookAround), true
	case "f1":
		return core.Known(core.CmdHelp), true
	}
	return core.Command{}, false
}
