package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/freelancehq/cli/internal/config"
	"github.com/freelancehq/cli/internal/devserver"
)

var (
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Run the local FreelanceHQ development API",
	Long: `Run a local stand-in for the FreelanceHQ API, backed by seeded
SQLite fixtures. Sign in with demo@freelancehq.io / freelance.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configFile)
		if err != nil {
			logrus.Fatalf("Failed to load configuration: %v", err)
		}

		server, err := devserver.NewServer(cfg)
		if err != nil {
			logrus.Fatalf("Failed to initialize server: %v", err)
		}

		if err := server.Start(); err != nil {
			logrus.Fatalf("Failed to start server: %v", err)
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		server.Stop()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to the configuration file (optional)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("Failed to execute command: %v", err)
	}
}
