package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/freelancehq/cli/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the FreelanceHQ server",
	Long:  "Prompts for your email and password and establishes a local session",
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {

	current := sessionManager.Current()
	if current.Authenticated() {
		fmt.Printf("Already logged in as %s. Run 'freelancehq logout' first to switch accounts.\n",
			infoStyle.Render(current.User.Email))
		return nil
	}

	var email, password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&email).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return fmt.Errorf("enter a valid email address")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if len(s) == 0 {
						return fmt.Errorf("password is required")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("login cancelled: %w", err)
	}

	resp, err := apiClient.Login(cmd.Context(), email, password)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			return fmt.Errorf("%s", statusErr.Error())
		}
		return fmt.Errorf("login failed: %w", err)
	}

	sessionManager.SetUser(&resp.User, resp.Token)

	fmt.Println(successStyle.Render("✓ Logged in as " + resp.User.Email))
	return nil
}
