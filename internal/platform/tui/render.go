package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Vaibhav6780/Echoverse-Project/internal/engine"
)

var (
	playerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	objectiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	hazardStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// RenderMap draws the visual snapshot as an ASCII grid, one cell per world
// unit: '@' player, '*' objective, '!' hazard. The renderer is a pure
// snapshot consumer; it never reaches into the engine.
func RenderMap(snap engine.VisualSnapshot) string {
	if snap.Environment == nil {
		return emptyStyle.Render("(no active environment)")
	}

	env := snap.Environment
	cols := int(env.HalfExtentX)*2 + 1
	rows := int(env.HalfExtentZ)*2 + 1

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = emptyStyle.Render("·")
		}
	}

	// World (x, z) to grid (col, row): +z is up, so row 0 is the far edge.
	place := func(x, z float64, cell string) {
		col := int(math.Round(x + env.HalfExtentX))
		row := rows - 1 - int(math.Round(z+env.HalfExtentZ))
		if col >= 0 && col < cols && row >= 0 && row < rows {
			grid[row][col] = cell
		}
	}

	for _, hz := range snap.Hazards {
		place(hz.Position.X, hz.Position.Z, hazardStyle.Render("!"))
	}
	for _, obj := range snap.Objectives {
		place(obj.Position.X, obj.Position.Z, objectiveStyle.Render("*"))
	}
	place(snap.PlayerPosition.X, snap.PlayerPosition.Z, playerStyle.Render("@"))

	var sb strings.Builder
	sb.WriteString(borderStyle.Render("+" + strings.Repeat("-", cols) + "+"))
	sb.WriteString("\n")
	for _, row := range grid {
		sb.WriteString(borderStyle.Render("|"))
		sb.WriteString(strings.Join(row, ""))
		sb.WriteString(borderStyle.Render("|"))
		sb.WriteString("\n")
	}
	sb.WriteString(borderStyle.Render("+" + strings.Repeat("-", cols) + "+"))
	return sb.String()
}

// RenderStatus formats the status snapshot as a one-line badge bar.
func RenderStatus(status engine.StatusSnapshot) string {
	state := "idle"
	if status.IsPlaying {
		state = "playing"
	}
	return fmt.Sprintf(" %s | %s | score %d | lives %d | level %d ",
		status.Mode, state, status.Score, status.Lives, status.CurrentLevel)
}
