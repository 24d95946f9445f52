package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/prxkc/instrat-mcp/internal/cli/client"
	"github.com/prxkc/instrat-mcp/internal/cli/ui"
	"github.com/prxkc/instrat-mcp/internal/handler/dto"
)

var (
	chatMessage   string
	chatResources []string
	chatPrompt    string
)

// chatCmd talks to the server's chat endpoint.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "chat with the configured language-model backend",
	Long: `Send a chat message to the server, optionally referencing catalog
resources as context. Without -m an interactive session is started; each line
is sent as an independent request (the server keeps no conversation state).`,
	Example: `  # One-shot message
  $ mcpctl chat -m "What does the company do?"

  # Reference catalog resources as context
  $ mcpctl chat -m "Summarize the FAQ" -r product:faq

  # Interactive session (Ctrl+C or empty line to exit)
  $ mcpctl chat`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "one-shot message (omit for interactive mode)")
	chatCmd.Flags().StringArrayVarP(&chatResources, "resource", "r", nil, "resource id to include as context (repeatable)")
	chatCmd.Flags().StringVarP(&chatPrompt, "prompt", "p", "", "prompt template name to apply")
	chatCmd.SilenceUsage = true
}

func runChat(cmd *cobra.Command, args []string) error {
	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	if chatMessage != "" {
		return sendChat(apiClient, chatMessage, true)
	}

	// Interactive mode: one request per line, no shared conversation state.
	first := true
	for {
		var line string
		prompt := &survey.Input{Message: ">"}
		if err := survey.AskOne(prompt, &line); err != nil {
			return nil
		}
		if line == "" {
			return nil
		}
		if err := sendChat(apiClient, line, first); err != nil {
			ui.PrintError("%v", err)
		}
		first = false
	}
}

func sendChat(apiClient *client.APIClient, message string, banner bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	req := dto.ChatRequest{
		Message:          message,
		ContextResources: chatResources,
		PromptName:       chatPrompt,
	}

	resp, err := apiClient.Chat(ctx, req)
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}

	if banner {
		ui.PrintChatWelcomeBanner(resp.Provider, resp.Mock)
	}

	fmt.Println(ui.Styles.Assistant.Render(resp.Message))
	return nil
}
