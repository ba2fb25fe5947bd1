package normalize

import (
	"testing"

	"github.com/Vaibhav6780/Echoverse-Project/internal/core"
)

func TestTranscriptCanonicalPhrases(t *testing.T) {
	for _, phrase := range core.Vocabulary() {
		if got := Transcript(phrase); got.Kind == core.CmdUnknown {
			t.Errorf("canonical phrase %q did not normalize", phrase)
		}
	}
}

func TestTranscriptCleaning(t *testing.T) {
	cases := []struct {
		raw  string
		want core.CommandKind
	}{
		{"  Start Game  ", core.CmdStart},
		{"GO LEFT!", core.CmdGoLeft},
		{"go   forward.", core.CmdGoForward},
		{"Look Around?", core.CmdLookAround},
	}
	for _, tc := range cases {
		if got := Transcript(tc.raw); got.Kind != tc.want {
			t.Errorf("Transcript(%q) = %v, want %v", tc.raw, got.Kind, tc.want)
		}
	}
}

func TestTranscriptSynonyms(t *testing.T) {
	cases := []struct {
		raw  string
		want core.CommandKind
	}{
		{"begin", core.CmdStart},
		{"new game", core.CmdStart},
		{"left", core.CmdGoLeft},
		{"walk right", core.CmdGoRight},
		{"ahead", core.CmdGoForward},
		{"backward", core.CmdGoBack},
		{"where am i", core.CmdLookAround},
		{"listen", core.CmdLookAround},
		{"what can i do", core.CmdHelp},
		{"say that again", core.CmdRepeat},
		{"switch mode", core.CmdToggleMode},
		{"start over", core.CmdReset},
		{"end game", core.CmdStop},
	}
	for _, tc := range cases {
		got := Transcript(tc.raw)
		if got.Kind != tc.want {
			t.Errorf("Transcript(%q) = %v, want %v", tc.raw, got.Kind, tc.want)
		}
		if got.Text != tc.want.String() {
			t.Errorf("Transcript(%q) text = %q, want canonical %q", tc.raw, got.Text, tc.want.String())
		}
	}
}

func TestTranscriptUnknownKeepsRawText(t *testing.T) {
	raw := "  Open the MAGIC door!  "
	got := Transcript(raw)
	if got.Kind != core.CmdUnknown {
		t.Fatalf("expected unknown, got %v", got.Kind)
	}
	if got.Text != raw {
		t.Errorf("unknown input must keep the original text, got %q", got.Text)
	}
}

func TestTranscriptEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "...", "!?"} {
		if got := Transcript(raw); got.Kind != core.CmdUnknown {
			t.Errorf("Transcript(%q) = %v, want unknown", raw, got.Kind)
		}
	}
}
