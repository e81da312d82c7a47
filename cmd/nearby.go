/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sakethrapaka/remind/internal/places"
	"github.com/spf13/cobra"
)

// nearbyCmd suggests places for a category of errand. Without an argument
// it uses the categories of the upcoming reminders.
var nearbyCmd = &cobra.Command{
	Use:   "nearby [category]",
	Short: "Show nearby location suggestions",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, tasks := openStore()
		requireUser(storage)

		var categories []string
		if len(args) == 1 {
			categories = []string{args[0]}
		} else {
			seen := map[string]bool{}
			for _, task := range tasks.Upcoming(time.Now()) {
				if !seen[task.Category] {
					seen[task.Category] = true
					categories = append(categories, task.Category)
				}
			}
			if len(categories) == 0 {
				fmt.Println("No upcoming tasks; pass a category, e.g. `remind nearby medicine`")
				return
			}
		}

		for _, cat := range categories {
			fmt.Printf("📍 Nearby for %q\n", cat)

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleDouble)
			t.Style().Options.SeparateRows = false
			t.AppendHeader(table.Row{
				text.FgGreen.Sprintf("Name"), text.FgGreen.Sprintf("Type"),
				text.FgGreen.Sprintf("Address"), text.FgGreen.Sprintf("Distance"),
				text.FgGreen.Sprintf("Rating"), text.FgGreen.Sprintf("Open"),
			})

			for _, loc := range places.Nearby(cat) {
				open := text.FgHiGreen.Sprintf("Open")
				if !loc.IsOpen {
					open = text.FgHiRed.Sprintf("Closed")
				}
				t.AppendRow(table.Row{
					loc.Name, loc.Category, loc.Address, loc.Distance,
					fmt.Sprintf("%.1f ★", loc.Rating), open,
				})
			}
			t.Render()
		}
	},
}

func init() {
	rootCmd.AddCommand(nearbyCmd)
}
