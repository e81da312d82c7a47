/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sakethrapaka/remind/internal/model"
	"github.com/sakethrapaka/remind/internal/schedule"
	"github.com/sakethrapaka/remind/internal/tui"
	"github.com/spf13/cobra"
)

var weekDate string
var weekInteractive bool

// weekCmd shows the calendar week, either as a static packed layout or as
// the interactive drag grid.
var weekCmd = &cobra.Command{
	Use:     "week",
	Short:   "Show the week calendar",
	Aliases: []string{"w", "calendar"},
	Run: func(cmd *cobra.Command, args []string) {
		config, storage, tasks := openStore()
		requireUser(storage)

		anchor := time.Now()
		if weekDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", weekDate, time.Local)
			if err != nil {
				log.Printf("❌ Invalid date %q, expected YYYY-MM-DD\n", weekDate)
				os.Exit(1)
			}
			anchor = parsed
		}

		if weekInteractive {
			if err := tui.Run(tasks, *config, anchor); err != nil {
				log.Fatalf("❌ Error running TUI: %v", err)
			}
			return
		}

		weekStart := schedule.WeekStart(anchor)
		layout := schedule.WeekLayout(tasks.Tasks(), weekStart, 1)

		fmt.Printf("📅 Week of %s\n", weekStart.Format("2006-01-02"))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Day"), text.FgGreen.Sprintf("Time"),
			text.FgGreen.Sprintf("Lane"), text.FgGreen.Sprintf("Title"),
			text.FgGreen.Sprintf("Category"),
		})

		total := 0
		for day := 0; day < 7; day++ {
			date := weekStart.AddDate(0, 0, day)
			label := date.Format("Mon 01-02")
			if festival, ok := model.FestivalOn(date.Format("2006-01-02")); ok {
				label += " 🎉 " + festival.Name
			}
			for _, placement := range layout[day] {
				t.AppendRow(table.Row{
					label,
					fmt.Sprintf("%s–%s", clock(placement.Start), clock(placement.End)),
					fmt.Sprintf("%d/%d", placement.Col+1, placement.Cols),
					placement.Task.Title,
					placement.Task.Category,
				})
				label = ""
				total++
			}
		}
		if total == 0 {
			fmt.Println("No scheduled tasks this week.")
			return
		}
		t.Render()
	},
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Any date inside the week to show (YYYY-MM-DD)")
	weekCmd.Flags().BoolVarP(&weekInteractive, "interactive", "i", false, "Open the interactive drag grid")
}
