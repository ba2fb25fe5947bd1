package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Vaibhav6780/Echoverse-Project/internal/audio"
	"github.com/Vaibhav6780/Echoverse-Project/internal/config"
	"github.com/Vaibhav6780/Echoverse-Project/internal/engine"
	"github.com/Vaibhav6780/Echoverse-Project/internal/platform/tui"
	"github.com/Vaibhav6780/Echoverse-Project/internal/storage"
	"github.com/Vaibhav6780/Echoverse-Project/internal/world"
)

var flagMode string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game console in the current terminal.

Type commands at the prompt (start game, go forward, look around, ...)
or use the arrow keys to move. Narration and sound cues appear in the
transcript pane.

Modes:
  practice  - A safe room with no objectives or hazards
  adventure - The campaign: clear every objective in each level

Examples:
  echoverse play
  echoverse play --mode practice
  echoverse play --worlds ./my-worlds.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "adventure", "Starting mode: practice or adventure")
}

func runPlay(cmd *cobra.Command, args []string) {
	engCfg, err := config.LoadEngine(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	catalog, err := world.Load(flagWorldsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading worlds: %v\n", err)
		os.Exit(1)
	}

	mode := engine.ModeAdventure
	switch flagMode {
	case "adventure":
	case "practice":
		mode = engine.ModePractice
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (use practice or adventure)\n", flagMode)
		os.Exit(1)
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "echoverse"})

	// The transcript doubles as narrator and audio sink: the console prints
	// what a speech backend would say.
	transcript := audio.NewTranscript()
	eng := engine.New(engCfg, catalog, engine.Deps{
		Narrator: transcript,
		Sound:    transcript,
		Logger:   logger,
	})
	eng.Start(mode)

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(eng, transcript, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
