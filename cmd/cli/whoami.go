package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		session := sessionManager.Current()

		if !session.Authenticated() {
			fmt.Println(mutedStyle.Render("Not logged in. Run 'freelancehq login' to authenticate."))
			return nil
		}

		user := session.User

		fmt.Println(titleStyle.Render("Session"))
		fmt.Printf("  %s %s\n", headerStyle.Render("Name: "), user.GetName())
		fmt.Printf("  %s %s\n", headerStyle.Render("Email:"), user.Email)
		if user.Verified != nil && *user.Verified {
			fmt.Printf("  %s %s\n", headerStyle.Render("State:"), successStyle.Render("verified"))
		}

		return nil
	},
}
