package client

const (
	endpointHealth = "/health"

	// Catalog endpoints
	endpointResources    = "/mcp/resources"      // GET
	endpointResourceByID = "/mcp/resources/%s"   // GET
	endpointTools        = "/mcp/tools"          // GET
	endpointToolsInvoke  = "/mcp/tools/invoke"   // POST
	endpointPrompts      = "/mcp/prompts"        // GET
	endpointPromptRender = "/mcp/prompts/render" // POST

	// Chat endpoint
	endpointChat = "/mcp/chat" // POST
)
