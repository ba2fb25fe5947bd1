package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vaibhav6780/Echoverse-Project/internal/world"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List the environments in the catalog",
	Long:  `Shows the practice room and every adventure level, with objectives and hazards per environment.`,
	Run:   runWorlds,
}

func runWorlds(cmd *cobra.Command, args []string) {
	catalog, err := world.Load(flagWorldsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading worlds: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("World catalog:")
	fmt.Println()

	printEnv := func(label string, env world.Environment) {
		fmt.Printf("  %-10s %s (%s)\n", label, env.Name, env.Soundscape)
		fmt.Printf("             footprint ±%.0f x ±%.0f, %d objectives, %d hazards\n",
			env.HalfExtentX, env.HalfExtentZ, len(env.Objectives), len(env.Hazards))
	}

	printEnv("practice", catalog.Practice)
	for i, env := range catalog.Adventure {
		printEnv(fmt.Sprintf("level %d", i+1), env)
	}

	fmt.Println()
	fmt.Println("Run 'echoverse play' to start.")
}
