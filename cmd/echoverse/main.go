// echoverse is an audio-first adventure game played entirely by commands:
// the world answers with narration and sound cues instead of graphics.
//
// Usage:
//
//	echoverse play             - Play in the terminal
//	echoverse worlds           - List the environments in the catalog
//	echoverse scores           - Show the best finished sessions
//	echoverse serve            - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>       - Sessions database path (default: ~/.echoverse/sessions.db)
//	--config <path>   - Engine tuning YAML
//	--worlds <path>   - World catalog YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
	flagWorldsPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "echoverse",
	Short: "Echoverse - an adventure you play by ear",
	Long: `Echoverse is an audio-first adventure game. You issue short commands
(go forward, look around, ...) and the world answers with narration and
sound cues. Collect every objective in a level to advance; hazards cost
lives, and three strikes end the run.

Available commands:
  play     - Play in the terminal
  worlds   - List the environments in the catalog
  scores   - View the best finished sessions
  serve    - Start SSH server for remote play

Examples:
  echoverse play
  echoverse play --mode practice
  echoverse worlds
  echoverse serve --ssh :2222
  echoverse scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.echoverse/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to engine tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagWorldsPath, "worlds", "", "Path to world catalog YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
