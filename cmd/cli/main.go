package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/freelancehq/cli/internal/api"
	"github.com/freelancehq/cli/internal/config"
	"github.com/freelancehq/cli/internal/sessions"
)

// Global configuration instance
var cfg *config.Config
var sessionManager *sessions.Manager
var apiClient *api.Client

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

func preRunClientConfigE(cmd *cobra.Command, _ []string) error {
	// Load configuration before any command runs
	var err error
	cfg, err = loadConfig(cmd)

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// check if verbose flag is set
	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	sessionPath := cfg.GetSessionPath()
	if len(sessionPath) == 0 {
		sessionPath = sessions.DefaultSessionPath()
	}

	// Restore any persisted session before any command runs
	sessionManager = sessions.NewManager(sessions.NewFileStore(sessionPath))
	sessionManager.Hydrate()

	apiClient = api.New(cfg, sessionManager)

	return nil
}

var rootCmd = &cobra.Command{
	Use:   "freelancehq",
	Short: "FreelanceHQ - Manage your freelance clients, projects and invoices",
	Long: `FreelanceHQ is a terminal client for the FreelanceHQ platform.

Run it without arguments to open the interactive dashboard, or use the
subcommands for scripted access to your clients, projects and invoices.`,
	PersistentPreRunE: preRunClientConfigE,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand opens the interactive dashboard
		return runDashboard()
	},
}

func init() {

	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is config.yaml in the working directory)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(invoicesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
