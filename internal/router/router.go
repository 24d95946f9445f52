package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/prxkc/instrat-mcp/internal/handler"
	"github.com/prxkc/instrat-mcp/internal/middleware"
)

// Setup registers all routes.
func Setup(
	h *server.Hertz,
	catalogHandler *handler.CatalogHandler,
	chatHandler *handler.ChatHandler,
	healthHandler *handler.HealthHandler,
	frontendHandler *handler.FrontendHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health checks
	h.GET("/health", healthHandler.Health)
	h.GET("/health/live", healthHandler.Liveness)
	h.GET("/health/ready", healthHandler.Readiness)

	// MCP catalog and chat
	mcp := h.Group("/mcp")
	{
		mcp.GET("/resources", catalogHandler.ListResources)
		mcp.GET("/resources/:id", catalogHandler.GetResource)

		mcp.GET("/tools", catalogHandler.ListTools)
		mcp.POST("/tools/invoke", catalogHandler.InvokeTool)

		mcp.GET("/prompts", catalogHandler.ListPrompts)
		mcp.POST("/prompts/render", catalogHandler.RenderPrompt)

		mcp.POST("/chat", chatHandler.Chat)
	}

	// Static demo frontend
	h.GET("/", frontendHandler.Index)
}
