/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/sakethrapaka/remind/internal/store"
	"github.com/spf13/cobra"
)

var loginName string
var loginPhone string

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in locally",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, _ := openStore()

		user, err := store.SignIn(storage, args[0], loginName, loginPhone)
		if err != nil {
			log.Printf("❌ Sign in failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Signed in as %s <%s>\n", user.Name, user.Email)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, _ := openStore()

		if err := store.SignOut(storage); err != nil {
			log.Printf("❌ Sign out failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✅ Signed out. Your tasks are still on disk.")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, _ := openStore()
		user := requireUser(storage)

		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if user.Phone != "" {
			fmt.Printf("📞 %s\n", user.Phone)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	loginCmd.Flags().StringVar(&loginName, "name", "", "Display name (defaults to the email local part)")
	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "Phone number")
}
