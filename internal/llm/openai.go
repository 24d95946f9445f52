package llm

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	hzclient "github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/prxkc/instrat-mcp/internal/config"
	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

const openAIBaseURL = "https://api.openai.com"

// openAITemperature is fixed; the demo server does not expose sampling knobs.
const openAITemperature = 0.2

// OpenAIOptions configure the OpenAI adapter.
type OpenAIOptions struct {
	// BaseURL overrides the API host, scheme included. Test seam.
	BaseURL string
}

// OpenAIClient calls the OpenAI chat-completions endpoint. Messages go over
// the wire unchanged: role/content pairs in request order.
type OpenAIClient struct {
	http    *hzclient.Client
	apiKey  string
	model   string
	baseURL string
}

// NewOpenAIClient creates the OpenAI adapter for the given credential and
// model name.
func NewOpenAIClient(apiKey, model string, optFns ...func(o *OpenAIOptions)) (*OpenAIClient, error) {
	opts := OpenAIOptions{BaseURL: openAIBaseURL}
	for _, fn := range optFns {
		fn(&opts)
	}

	c, err := newHTTPClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &OpenAIClient{
		http:    c,
		apiKey:  apiKey,
		model:   model,
		baseURL: opts.BaseURL,
	}, nil
}

// Provider returns "openai".
func (c *OpenAIClient) Provider() string { return config.ProviderOpenAI }

// Mock returns false.
func (c *OpenAIClient) Mock() bool { return false }

type openAIRequest struct {
	Model       string               `json:"model"`
	Messages    []entity.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage map[string]any `json:"usage"`
}

// Generate issues a single chat-completion call. No retries; any failure is
// surfaced to the caller as-is.
func (c *OpenAIClient) Generate(ctx context.Context, messages []entity.ChatMessage) (string, map[string]any, error) {
	payload := openAIRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: openAITemperature,
	}
	body, err := sonic.Marshal(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.baseURL + "/v1/chat/completions")
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.SetBody(body)

	if err := c.http.DoTimeout(ctx, req, resp, generateTimeout); err != nil {
		return "", nil, fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return "", nil, &UpstreamError{
			Provider:   config.ProviderOpenAI,
			StatusCode: status,
			Body:       string(resp.Body()),
		}
	}

	var parsed openAIResponse
	if err := sonic.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message == nil || parsed.Choices[0].Message.Content == nil {
		return "", nil, fmt.Errorf("%w: missing choices[0].message.content", ErrMalformedResponse)
	}

	usage := parsed.Usage
	if usage == nil {
		usage = map[string]any{}
	}

	return *parsed.Choices[0].Message.Content, map[string]any{
		"model": c.model,
		"usage": usage,
	}, nil
}
