package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunarisgames/rotagems/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows a list of all levels registered with the game.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	infos := levels.List()

	if len(infos) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, info := range infos {
		if len(info.Name) > maxNameLen {
			maxNameLen = len(info.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "Name", "Board", "Description")
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "----", "-----", "-----------")

	for _, info := range infos {
		board := fmt.Sprintf("%dx%d", info.Width, info.Height)
		fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, info.Name, board, info.Description)
	}

	fmt.Println()
	fmt.Println("Run 'rotagems play <name>' to play a level.")
}
