package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Long:  "Clears the in-memory session and removes the persisted session file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !sessionManager.Current().Authenticated() {
			fmt.Println(mutedStyle.Render("No active session."))
			return nil
		}

		sessionManager.Logout()

		fmt.Println(successStyle.Render("✓ Logged out"))
		return nil
	},
}
