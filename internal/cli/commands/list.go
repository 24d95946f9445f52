package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prxkc/instrat-mcp/internal/cli/ui"
)

// listCmd lists catalog entries of one kind.
var listCmd = &cobra.Command{
	Use:   "list {resources|tools|prompts}",
	Short: "list catalog entries",
	Long: `List the server's static catalog entries.

Shows resources (reference data retrievable by id), tools (callable functions
with argument schemas), or prompt templates (with their required inputs).`,
	Example: `  # List all resources
  $ mcpctl list resources

  # List all tools
  $ mcpctl list tools

  # List all prompt templates
  $ mcpctl list prompts`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.SilenceUsage = true
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	switch args[0] {
	case "resources":
		resources, err := apiClient.ListResources(ctx)
		if err != nil {
			ui.PrintError("failed to list resources: %v", err)
			return fmt.Errorf("list failed")
		}
		ui.PrintResourceList(resources)

	case "tools":
		tools, err := apiClient.ListTools(ctx)
		if err != nil {
			ui.PrintError("failed to list tools: %v", err)
			return fmt.Errorf("list failed")
		}
		ui.PrintToolList(tools)

	case "prompts":
		prompts, err := apiClient.ListPrompts(ctx)
		if err != nil {
			ui.PrintError("failed to list prompts: %v", err)
			return fmt.Errorf("list failed")
		}
		ui.PrintPromptList(prompts)

	default:
		ui.PrintError("unknown catalog kind: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	return nil
}
