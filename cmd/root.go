/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"
	"os"

	"github.com/sakethrapaka/remind/internal/model"
	"github.com/sakethrapaka/remind/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "remind",
	Short: "A local-first reminder and calendar CLI",
	Long: `remind keeps time-boxed tasks in a local JSON data directory and shows
them as lists, a week calendar with drag interaction, in-app notifications,
and nearby-location suggestions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore wires config, storage, and the task list for a command run.
func openStore() (*model.Config, *store.FileStorage, *store.TaskStore) {
	config, err := store.LoadConfig()
	if err != nil {
		log.Printf("❌ Error loading config: %v\n", err)
		log.Println("💡 Run `remind init` first.")
		os.Exit(1)
	}

	storage, err := store.NewFileStorage(config.DataDir)
	if err != nil {
		log.Printf("❌ Error opening data directory: %v\n", err)
		os.Exit(1)
	}

	tasks, err := store.OpenTaskStore(storage)
	if err != nil {
		log.Printf("❌ Error loading tasks: %v\n", err)
		os.Exit(1)
	}

	return config, storage, tasks
}

// requireUser insists on a signed-in user for the view commands.
func requireUser(storage store.Storage) model.User {
	user, err := store.CurrentUser(storage)
	if err != nil {
		log.Printf("❌ Not signed in. Run `remind login <email>` first.")
		os.Exit(1)
	}
	return user
}
