package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/prxkc/instrat-mcp/internal/handler/dto"
	"github.com/prxkc/instrat-mcp/internal/usecase"
)

// CatalogHandler serves the static resource, tool, and prompt endpoints.
type CatalogHandler struct {
	usecase *usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewCatalogHandler creates the catalog handler.
func NewCatalogHandler(uc *usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{usecase: uc, logger: logger}
}

// ListResources handles GET /mcp/resources.
func (h *CatalogHandler) ListResources(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, h.usecase.ListResources())
}

// GetResource handles GET /mcp/resources/:id.
func (h *CatalogHandler) GetResource(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")

	resource, err := h.usecase.GetResource(id)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, resource)
}

// ListTools handles GET /mcp/tools.
func (h *CatalogHandler) ListTools(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, h.usecase.ListTools())
}

// InvokeTool handles POST /mcp/tools/invoke.
func (h *CatalogHandler) InvokeTool(ctx context.Context, c *app.RequestContext) {
	var req dto.ToolInvocationRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Warn("failed to bind tool invocation request", "error", err)
		BadRequestResponse(c, "invalid request body")
		return
	}

	result, err := h.usecase.InvokeTool(req.ToolName, req.Arguments)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, result)
}

// ListPrompts handles GET /mcp/prompts.
func (h *CatalogHandler) ListPrompts(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, h.usecase.ListPrompts())
}

// RenderPrompt handles POST /mcp/prompts/render.
func (h *CatalogHandler) RenderPrompt(ctx context.Context, c *app.RequestContext) {
	var req dto.PromptRenderRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Warn("failed to bind prompt render request", "error", err)
		BadRequestResponse(c, "invalid request body")
		return
	}

	rendered, err := h.usecase.RenderPrompt(req.PromptName, req.Inputs)
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, rendered)
}
