// Package catalog holds the static resource, tool, and prompt stores exposed
// by the server. All data is seeded at construction and never mutated, so a
// single Catalog instance is safe for unlimited concurrent readers.
package catalog

import (
	"sort"

	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

// Catalog is the in-memory implementation of the resource, tool, and prompt
// repositories.
type Catalog struct {
	resources map[string]*entity.Resource
	tools     map[string]*entity.ToolDefinition
	prompts   map[string]*entity.Prompt
}

// New builds the catalog with its built-in demo data.
func New() *Catalog {
	return &Catalog{
		resources: seedResources(),
		tools:     seedTools(),
		prompts:   seedPrompts(),
	}
}

// ListResources returns all resources sorted by id.
func (c *Catalog) ListResources() []*entity.Resource {
	out := make([]*entity.Resource, 0, len(c.resources))
	for _, r := range c.resources {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetResource returns the resource for id, or false when unknown.
func (c *Catalog) GetResource(id string) (*entity.Resource, bool) {
	r, ok := c.resources[id]
	return r, ok
}

func seedResources() map[string]*entity.Resource {
	return map[string]*entity.Resource{
		"company:outline": {
			ID:          "company:outline",
			Title:       "Company Overview",
			Description: "High-level overview of the example company profile.",
			URI:         "mcp://resources/company-outline",
			MimeType:    "application/json",
			Tags:        []string{"company", "knowledge-base"},
			Data: map[string]any{
				"name":    "Instrat Demo Co.",
				"mission": "Deliver AI-enabled productivity tooling.",
				"products": []any{
					"MCP integration services",
					"LLM consulting",
					"Automation toolkits",
				},
			},
		},
		"product:faq": {
			ID:          "product:faq",
			Title:       "Product FAQ",
			Description: "Frequently asked questions for the flagship product.",
			URI:         "mcp://resources/product-faq",
			MimeType:    "application/json",
			Tags:        []string{"faq", "support"},
			Data: map[string]any{
				"deployment": "Docker or serverless",
				"uptime_sla": "99.9%",
				"support":    "Email support within one business day",
			},
		},
	}
}
