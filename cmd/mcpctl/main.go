package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/prxkc/instrat-mcp/internal/cli/commands"
	"github.com/prxkc/instrat-mcp/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			ui.PrintError("%s", err.Error())
			fmt.Println("\nRun 'mcpctl --help' for usage.")
		}
		os.Exit(1)
	}
}
