/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/sakethrapaka/remind/internal/model"
	"github.com/sakethrapaka/remind/internal/notify"
	"github.com/sakethrapaka/remind/internal/store"
	"github.com/spf13/cobra"
)

var notifyInterval time.Duration

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "In-app due-task notifications",
}

var notifyListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show currently due notifications",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, tasks := openStore()
		requireUser(storage)

		settings, _ := store.LoadSettings(storage)
		if !settings.Notifications {
			fmt.Println("🔕 Notifications are disabled (see `remind settings`)")
			return
		}

		printAlerts(notify.Scan(tasks.Tasks(), time.Now()))
	},
}

var notifyWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll for due tasks until interrupted",
	Run: func(cmd *cobra.Command, args []string) {
		config, storage, tasks := openStore()
		requireUser(storage)

		settings, _ := store.LoadSettings(storage)
		if !settings.Notifications {
			fmt.Println("🔕 Notifications are disabled (see `remind settings`)")
			return
		}

		interval := notifyInterval
		if interval == 0 {
			interval = time.Duration(config.Notify.Interval) * time.Second
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		log.Printf("🔄 Watching for due reminders every %s (Ctrl-C to stop)...", interval)
		poller := notify.NewPoller(tasks, interval)
		poller.Watch(ctx, func(due []model.Task) {
			if len(due) == 0 {
				return
			}
			printAlerts(due)
		})

		fmt.Println("\n✅ Stopped watching.")
	},
}

func printAlerts(due []model.Task) {
	if len(due) == 0 {
		fmt.Println("No new notifications")
		return
	}
	alert := color.New(color.FgHiRed, color.Bold).SprintFunc()
	for _, task := range due {
		fmt.Printf("%s %s — due on %s at %s (ack: `remind task done %s`)\n",
			alert("⚠"), alert(task.Title), task.Date, displayTime(task), task.ID)
	}
}

func init() {
	notifyCmd.AddCommand(notifyListCmd)
	notifyCmd.AddCommand(notifyWatchCmd)
	rootCmd.AddCommand(notifyCmd)
	notifyWatchCmd.Flags().DurationVar(&notifyInterval, "interval", 0, "Poll interval (default from config)")
}
