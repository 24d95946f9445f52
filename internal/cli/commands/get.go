package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prxkc/instrat-mcp/internal/cli/ui"
)

// getCmd fetches one resource by id.
var getCmd = &cobra.Command{
	Use:   "get <resource-id>",
	Short: "fetch one resource by id",
	Example: `  # Fetch the company outline resource
  $ mcpctl get company:outline`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.SilenceUsage = true
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	resource, err := apiClient.GetResource(ctx, args[0])
	if err != nil {
		ui.PrintError("failed to get resource: %v", err)
		return fmt.Errorf("get failed")
	}

	ui.PrintResourceDetail(resource)
	return nil
}
