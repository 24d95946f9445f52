package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

// PrintResourceList renders catalog resources as an indented listing.
func PrintResourceList(resources []entity.Resource) {
	fmt.Println(Styles.Header.Render("RESOURCES"))
	if len(resources) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, r := range resources {
		fmt.Printf("  %s  %s\n", Styles.Bold.Render(r.ID), r.Title)
		fmt.Printf("      %s\n", r.Description)
		if len(r.Tags) > 0 {
			fmt.Printf("      tags: %s\n", strings.Join(r.Tags, ", "))
		}
	}
}

// PrintResourceDetail renders one resource including its data payload.
func PrintResourceDetail(r *entity.Resource) {
	fmt.Printf("%s  %s\n", Styles.Bold.Render(r.ID), r.Title)
	fmt.Printf("  %s\n", r.Description)
	fmt.Printf("  uri: %s\n  mime_type: %s\n", r.URI, r.MimeType)
	if len(r.Tags) > 0 {
		fmt.Printf("  tags: %s\n", strings.Join(r.Tags, ", "))
	}
	data, err := json.MarshalIndent(r.Data, "  ", "  ")
	if err == nil {
		fmt.Printf("  data:\n  %s\n", data)
	}
}

// PrintToolList renders tool definitions with their argument schemas.
func PrintToolList(tools []entity.ToolDefinition) {
	fmt.Println(Styles.Header.Render("TOOLS"))
	if len(tools) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, t := range tools {
		fmt.Printf("  %s  %s\n", Styles.Bold.Render(t.Name), t.Description)
		for _, arg := range t.Arguments {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Printf("      %s <%s>%s  %s\n", arg.Name, arg.Type, required, arg.Description)
		}
	}
}

// PrintPromptList renders prompt templates and their input variables.
func PrintPromptList(prompts []entity.Prompt) {
	fmt.Println(Styles.Header.Render("PROMPTS"))
	if len(prompts) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, p := range prompts {
		fmt.Printf("  %s  %s\n", Styles.Bold.Render(p.Name), p.Description)
		if len(p.InputVariables) > 0 {
			fmt.Printf("      inputs: %s\n", strings.Join(p.InputVariables, ", "))
		}
	}
}
