package usecase

import (
	"log/slog"

	"github.com/prxkc/instrat-mcp/internal/domain"
	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

// CatalogUsecase exposes the catalog to the HTTP layer: listings pass
// through, direct lookups of unknown ids become not-found errors, and
// tool/prompt failures keep their invalid-input classification.
type CatalogUsecase struct {
	catalog domain.Catalog
	logger  *slog.Logger
}

// NewCatalogUsecase creates the catalog usecase.
func NewCatalogUsecase(catalog domain.Catalog, logger *slog.Logger) *CatalogUsecase {
	return &CatalogUsecase{catalog: catalog, logger: logger}
}

// ListResources returns all resource records.
func (u *CatalogUsecase) ListResources() []*entity.Resource {
	return u.catalog.ListResources()
}

// GetResource returns one resource record or a not-found error.
func (u *CatalogUsecase) GetResource(id string) (*entity.Resource, error) {
	resource, ok := u.catalog.GetResource(id)
	if !ok {
		return nil, domain.NewNotFoundError("Resource", id)
	}
	return resource, nil
}

// ListTools returns all tool definitions.
func (u *CatalogUsecase) ListTools() []*entity.ToolDefinition {
	return u.catalog.ListTools()
}

// InvokeTool executes a tool by name.
func (u *CatalogUsecase) InvokeTool(name string, arguments map[string]any) (*entity.ToolResult, error) {
	result, err := u.catalog.InvokeTool(name, arguments)
	if err != nil {
		u.logger.Warn("tool invocation failed", "tool", name, "error", err)
		return nil, err
	}
	return result, nil
}

// ListPrompts returns all prompt templates.
func (u *CatalogUsecase) ListPrompts() []*entity.Prompt {
	return u.catalog.ListPrompts()
}

// RenderPrompt renders a prompt template by name.
func (u *CatalogUsecase) RenderPrompt(name string, inputs map[string]any) (*entity.RenderedPrompt, error) {
	rendered, err := u.catalog.RenderPrompt(name, inputs)
	if err != nil {
		u.logger.Warn("prompt rendering failed", "prompt", name, "error", err)
		return nil, err
	}
	return rendered, nil
}
