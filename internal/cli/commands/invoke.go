package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prxkc/instrat-mcp/internal/cli/ui"
)

var invokeArgs []string

// invokeCmd invokes a tool by name.
var invokeCmd = &cobra.Command{
	Use:   "invoke <tool-name>",
	Short: "invoke a tool with arguments",
	Example: `  # Add two numbers
  $ mcpctl invoke math.add --arg a=2 --arg b=3

  # Get the current timestamp
  $ mcpctl invoke time.now`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoke,
}

func init() {
	invokeCmd.Flags().StringArrayVar(&invokeArgs, "arg", nil, "tool argument as key=value (repeatable)")
	invokeCmd.SilenceUsage = true
}

func runInvoke(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	arguments, err := parseKeyValues(invokeArgs)
	if err != nil {
		ui.PrintError("invalid --arg: %v", err)
		return fmt.Errorf("invalid arguments")
	}

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	result, err := apiClient.InvokeTool(ctx, args[0], arguments)
	if err != nil {
		ui.PrintError("tool invocation failed: %v", err)
		return fmt.Errorf("invoke failed")
	}

	output, marshalErr := json.MarshalIndent(result.Output, "", "  ")
	if marshalErr != nil {
		output = []byte(fmt.Sprintf("%v", result.Output))
	}
	ui.PrintSuccess("%s", args[0])
	fmt.Println(string(output))
	return nil
}
