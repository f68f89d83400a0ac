package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freelancehq/cli/internal/api"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List your clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients, err := apiClient.ListClients(cmd.Context())
		if err != nil {
			return apiCommandError(err)
		}

		if len(clients) == 0 {
			fmt.Println(mutedStyle.Render("No clients yet."))
			return nil
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Clients (%d)", len(clients))))
		for _, client := range clients {
			fmt.Printf("  %s %s", headerStyle.Render(fmt.Sprintf("#%d", client.ID)), client.Name)
			if len(client.Company) > 0 {
				fmt.Printf(" %s", mutedStyle.Render("("+client.Company+")"))
			}
			fmt.Println()
			if len(client.Email) > 0 {
				fmt.Printf("      %s\n", mutedStyle.Render(client.Email))
			}
		}

		return nil
	},
}

// apiCommandError maps API failures to user-facing command errors. Server
// error payloads already carry a human-readable detail, so surface that
// message unchanged; StatusError falls back to the status code when the
// response body carried no detail.
func apiCommandError(err error) error {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Errorf("%s", statusErr.Error())
	}
	return err
}
