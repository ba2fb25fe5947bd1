package core

import "testing"

func TestParseCommandVocabulary(t *testing.T) {
	cases := []struct {
		phrase string
		want   CommandKind
	}{
		{"start game", CmdStart},
		{"go left", CmdGoLeft},
		{"go right", CmdGoRight},
		{"go forward", CmdGoForward},
		{"go back", CmdGoBack},
		{"look around", CmdLookAround},
		{"help", CmdHelp},
		{"repeat", CmdRepeat},
		{"toggle mode", CmdToggleMode},
		{"reset game", CmdReset},
		{"stop game", CmdStop},
	}
	for _, tc := range cases {
		got := ParseCommand(tc.phrase)
		if got.Kind != tc.want {
			t.Errorf("ParseCommand(%q) = %v, want %v", tc.phrase, got.Kind, tc.want)
		}
		if got.Text != tc.phrase {
			t.Errorf("ParseCommand(%q) kept text %q", tc.phrase, got.Text)
		}
	}
}

func TestParseCommandUnknownPreservesText(t *testing.T) {
	got := ParseCommand("open the door")
	if got.Kind != CmdUnknown {
		t.Errorf("expected CmdUnknown, got %v", got.Kind)
	}
	if got.Text != "open the door" {
		t.Errorf("unknown command lost its text: %q", got.Text)
	}
}

func TestParseCommandIsExact(t *testing.T) {
	// Fuzzy matching belongs to the normalizer, not the parser.
	for _, s := range []string{"Start Game", "start game ", "go  left", "start"} {
		if got := ParseCommand(s); got.Kind != CmdUnknown {
			t.Errorf("ParseCommand(%q) = %v, want CmdUnknown", s, got.Kind)
		}
	}
}

func TestVocabularyCoversEveryKind(t *testing.T) {
	vocab := Vocabulary()
	if len(vocab) != 11 {
		t.Fatalf("expected 11 phrases, got %d: %v", len(vocab), vocab)
	}
	seen := map[string]bool{}
	for _, phrase := range vocab {
		if seen[phrase] {
			t.Errorf("duplicate phrase %q", phrase)
		}
		seen[phrase] = true
		if ParseCommand(phrase).Kind == CmdUnknown {
			t.Errorf("vocabulary phrase %q does not parse", phrase)
		}
	}
}

func TestKnownAndUnknownConstructors(t *testing.T) {
	if c := Known(CmdGoLeft); c.Kind != CmdGoLeft || c.Text != "go left" {
		t.Errorf("Known(CmdGoLeft) = %+v", c)
	}
	if c := Unknown("gibberish"); c.Kind != CmdUnknown || c.Text != "gibberish" {
		t.Errorf("Unknown = %+v", c)
	}
}
