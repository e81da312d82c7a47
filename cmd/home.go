/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sakethrapaka/remind/internal/model"
	"github.com/sakethrapaka/remind/internal/store"
	"github.com/sakethrapaka/remind/internal/util"
	"github.com/spf13/cobra"
)

// homeCmd is the dashboard: greeting, pending count, upcoming reminders.
var homeCmd = &cobra.Command{
	Use:     "home",
	Short:   "Show the dashboard",
	Aliases: []string{"dashboard"},
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, tasks := openStore()
		user := requireUser(storage)

		settings, err := store.LoadSettings(storage)
		if err != nil {
			log.Printf("⚠️ %v", err)
		}
		name := settings.DisplayName
		if name == "" {
			name = user.Name
		}

		now := time.Now()
		pending := tasks.Pending(now)
		upcoming := tasks.Upcoming(now)

		greeting := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("%s, %s! 👋\n", greeting(util.Greeting(now)), greeting(name))
		fmt.Printf("You have %d pending tasks\n", len(pending))
		if festival, ok := model.FestivalOn(now.Format("2006-01-02")); ok {
			fmt.Printf("🎉 Today is %s\n", festival.Name)
		}
		fmt.Println(strings.Repeat("-", 40))

		if len(upcoming) == 0 {
			fmt.Println("No upcoming tasks")
			fmt.Println("Create a new reminder to get started")
			return
		}

		fmt.Println("Upcoming Reminders")
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("Title"),
			text.FgGreen.Sprintf("Category"), text.FgGreen.Sprintf("Due"),
		})
		for _, task := range upcoming {
			t.AppendRow(table.Row{
				task.ID, task.Title, task.Category,
				fmt.Sprintf("%s at %s", task.Date, displayTime(task)),
			})
		}
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
