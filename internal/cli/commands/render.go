package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/prxkc/instrat-mcp/internal/cli/ui"
)

var renderInputs []string

// renderCmd renders a prompt template by name.
var renderCmd = &cobra.Command{
	Use:   "render <prompt-name>",
	Short: "render a prompt template",
	Long: `Render a prompt template with the given inputs.

Inputs can be supplied with repeated --input flags. Any required input
variables missing from the flags are collected interactively.`,
	Example: `  # Render with all inputs on the command line
  $ mcpctl render support-reply --input customer_message="Help" --input context="FAQ"

  # Prompt interactively for missing inputs
  $ mcpctl render summarize-resource`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringArrayVar(&renderInputs, "input", nil, "prompt input as key=value (repeatable)")
	renderCmd.SilenceUsage = true
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	inputs, err := parseKeyValues(renderInputs)
	if err != nil {
		ui.PrintError("invalid --input: %v", err)
		return fmt.Errorf("invalid arguments")
	}

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	// Look up the template's declared inputs so missing ones can be asked
	// for interactively instead of failing the render.
	prompts, err := apiClient.ListPrompts(ctx)
	if err != nil {
		ui.PrintError("failed to list prompts: %v", err)
		return fmt.Errorf("render failed")
	}
	found := false
	for _, p := range prompts {
		if p.Name != args[0] {
			continue
		}
		found = true
		for _, variable := range p.InputVariables {
			if _, ok := inputs[variable]; ok {
				continue
			}
			var value string
			prompt := &survey.Input{Message: fmt.Sprintf("%s:", variable)}
			if err := survey.AskOne(prompt, &value); err != nil {
				return fmt.Errorf("input aborted")
			}
			inputs[variable] = value
		}
	}
	if !found {
		ui.PrintWarning("prompt %q is not in the server catalog", args[0])
	}

	rendered, err := apiClient.RenderPrompt(ctx, args[0], inputs)
	if err != nil {
		ui.PrintError("prompt rendering failed: %v", err)
		return fmt.Errorf("render failed")
	}

	ui.PrintSuccess("%s", args[0])
	fmt.Println(rendered.Content)
	return nil
}
