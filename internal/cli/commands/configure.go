package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prxkc/instrat-mcp/internal/cli/config"
	"github.com/prxkc/instrat-mcp/internal/cli/ui"
)

// configCmd shows or updates the persisted client configuration.
var configCmd = &cobra.Command{
	Use:   "config [server-address]",
	Short: "show or set the server address",
	Long: `Show the persisted server address, or set a new one.

The address is stored in ~/.mcpctl/config.json and used whenever the
--server flag is not given.`,
	Example: `  # Show the current server address
  $ mcpctl config

  # Point the client at another server
  $ mcpctl config http://demo.example.com:8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.SilenceUsage = true
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	if len(args) == 0 {
		ui.PrintInfo("server: %s", cfg.Server)
		return nil
	}

	cfg.Server = args[0]
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	ui.PrintSuccess("server set to %s", cfg.Server)
	return nil
}
