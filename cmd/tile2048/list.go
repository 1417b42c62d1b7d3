package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/games/t2048"
	"github.com/vovakirdan/tile2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board variants",
	Long:  `Shows every registered board variant with its size and target tile.`,
	Run:   runList,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No variants available.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Board", "Target").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, g := range games {
		v, ok := t2048.LookupVariant(g.ID)
		if !ok {
			t.Row(g.ID, g.Title, "", "")
			continue
		}
		board := strconv.Itoa(v.Size) + "x" + strconv.Itoa(v.Size)
		t.Row(v.ID, v.Name, board, v.Target())
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'tile2048 play <id>' to play a variant.")
}
