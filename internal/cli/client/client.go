package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	hzclient "github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/prxkc/instrat-mcp/internal/domain/entity"
	"github.com/prxkc/instrat-mcp/internal/handler/dto"
)

const requestTimeout = 60 * time.Second

// APIClient wraps a Hertz client for HTTP communication with the MCP server.
type APIClient struct {
	client *hzclient.Client
	server string
}

// NewAPIClient creates a new API client for the given server address.
func NewAPIClient(server string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := hzclient.NewClient(
		hzclient.WithDialTimeout(10*time.Second),
		hzclient.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
	}, nil
}

// normalizeServerURL ensures the server address has a scheme and no path.
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// apiError is the server's error envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do performs one request and decodes a success body into out (when non-nil).
// Non-2xx responses are turned into errors carrying the server's message.
func (c *APIClient) do(ctx context.Context, method, path string, body any, out any) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(method)
	req.SetRequestURI(c.server + path)

	if body != nil {
		bodyBytes, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(bodyBytes)
	}

	if err := c.client.DoTimeout(ctx, req, resp, requestTimeout); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		var envelope apiError
		if err := sonic.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
			return fmt.Errorf("server returned %d: %s", status, envelope.Message)
		}
		return fmt.Errorf("server returned HTTP status %d", status)
	}

	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// Health checks server health.
func (c *APIClient) Health(ctx context.Context) error {
	return c.do(ctx, consts.MethodGet, endpointHealth, nil, nil)
}

// ListResources lists all catalog resources.
func (c *APIClient) ListResources(ctx context.Context) ([]entity.Resource, error) {
	var resources []entity.Resource
	if err := c.do(ctx, consts.MethodGet, endpointResources, nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// GetResource fetches one resource by id.
func (c *APIClient) GetResource(ctx context.Context, id string) (*entity.Resource, error) {
	var resource entity.Resource
	path := fmt.Sprintf(endpointResourceByID, url.PathEscape(id))
	if err := c.do(ctx, consts.MethodGet, path, nil, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// ListTools lists all tool definitions.
func (c *APIClient) ListTools(ctx context.Context) ([]entity.ToolDefinition, error) {
	var tools []entity.ToolDefinition
	if err := c.do(ctx, consts.MethodGet, endpointTools, nil, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// InvokeTool invokes a tool by name.
func (c *APIClient) InvokeTool(ctx context.Context, name string, arguments map[string]any) (*entity.ToolResult, error) {
	req := dto.ToolInvocationRequest{ToolName: name, Arguments: arguments}
	var result entity.ToolResult
	if err := c.do(ctx, consts.MethodPost, endpointToolsInvoke, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListPrompts lists all prompt templates.
func (c *APIClient) ListPrompts(ctx context.Context) ([]entity.Prompt, error) {
	var prompts []entity.Prompt
	if err := c.do(ctx, consts.MethodGet, endpointPrompts, nil, &prompts); err != nil {
		return nil, err
	}
	return prompts, nil
}

// RenderPrompt renders a prompt template by name.
func (c *APIClient) RenderPrompt(ctx context.Context, name string, inputs map[string]any) (*entity.RenderedPrompt, error) {
	req := dto.PromptRenderRequest{PromptName: name, Inputs: inputs}
	var rendered entity.RenderedPrompt
	if err := c.do(ctx, consts.MethodPost, endpointPromptRender, req, &rendered); err != nil {
		return nil, err
	}
	return &rendered, nil
}

// Chat sends a chat request and returns the completion.
func (c *APIClient) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	var resp dto.ChatResponse
	if err := c.do(ctx, consts.MethodPost, endpointChat, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
