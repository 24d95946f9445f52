package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prxkc/instrat-mcp/internal/domain"
	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

// ListPrompts returns all prompt templates sorted by name.
func (c *Catalog) ListPrompts() []*entity.Prompt {
	out := make([]*entity.Prompt, 0, len(c.prompts))
	for _, p := range c.prompts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RenderPrompt substitutes inputs into the named template. Every declared
// input variable is required; missing ones are listed in the returned error.
func (c *Catalog) RenderPrompt(name string, inputs map[string]any) (*entity.RenderedPrompt, error) {
	prompt, ok := c.prompts[name]
	if !ok {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("Unknown prompt: %s", name))
	}

	var missing []string
	for _, v := range prompt.InputVariables {
		if _, ok := inputs[v]; !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("Missing prompt inputs: %s", strings.Join(missing, ", ")))
	}

	// Single-pass substitution: replaced values are never rescanned, so
	// placeholder tokens inside an input value stay literal.
	pairs := make([]string, 0, 2*len(prompt.InputVariables))
	for _, v := range prompt.InputVariables {
		pairs = append(pairs, "{"+v+"}", fmt.Sprintf("%v", inputs[v]))
	}
	content := strings.NewReplacer(pairs...).Replace(prompt.Template)

	return &entity.RenderedPrompt{
		Content:  content,
		Metadata: map[string]any{"prompt": prompt.Name},
	}, nil
}

func seedPrompts() map[string]*entity.Prompt {
	return map[string]*entity.Prompt{
		"summarize-resource": {
			Name:        "summarize-resource",
			Description: "Summarize a resource for a customer-facing answer.",
			Template: "You are preparing a short summary for a customer question.\n" +
				"Resource details:\n{resource_json}\n" +
				"User question:\n{question}\n" +
				"Provide a concise response.",
			InputVariables: []string{"resource_json", "question"},
		},
		"support-reply": {
			Name:        "support-reply",
			Description: "Craft a polite support response using provided context.",
			Template: "Customer message:\n{customer_message}\n\n" +
				"Context snippets:\n{context}\n\n" +
				"Compose a supportive reply with next steps.",
			InputVariables: []string{"customer_message", "context"},
		},
	}
}
