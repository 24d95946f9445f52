package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prxkc/instrat-mcp/internal/cli/client"
	"github.com/prxkc/instrat-mcp/internal/cli/config"
	"github.com/prxkc/instrat-mcp/internal/cli/ui"
)

const version = "0.1.0"

var serverFlag string

// rootCmd is the root command.
var rootCmd = &cobra.Command{
	Use:     "mcpctl",
	Short:   "MCP demo server CLI",
	Version: version,
	Long: `A command-line client for the MCP demo server. Browse the static catalog of
resources, tools, and prompt templates, invoke tools, render prompts, and
chat with the configured language-model backend.`,
	Example: `  # List catalog entries
  $ mcpctl list resources
  $ mcpctl list tools
  $ mcpctl list prompts

  # Fetch one resource
  $ mcpctl get company:outline

  # Invoke a tool
  $ mcpctl invoke math.add --arg a=2 --arg b=3

  # Render a prompt
  $ mcpctl render summarize-resource --input question="What is the SLA?"

  # One-shot or interactive chat
  $ mcpctl chat -m "hi"
  $ mcpctl chat`,
}

// Execute executes the root command.
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "MCP server address (default from ~/.mcpctl/config.json)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(invokeCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(chatCmd)

	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

// newAPIClient resolves the server address (flag wins over config file) and
// builds the API client.
func newAPIClient() (*client.APIClient, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, fmt.Errorf("config load failed")
	}

	server := cfg.Server
	if serverFlag != "" {
		server = serverFlag
	}

	apiClient, err := client.NewAPIClient(server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, fmt.Errorf("client creation failed")
	}

	return apiClient, nil
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

func formatVersion() string {
	return fmt.Sprintf("mcpctl version %s\n", version)
}
