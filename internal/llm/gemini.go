package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	hzclient "github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/prxkc/instrat-mcp/internal/config"
	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiOptions configure the Gemini adapter.
type GeminiOptions struct {
	// BaseURL overrides the API host, scheme included. Test seam.
	BaseURL string
}

// GeminiClient calls the Gemini generateContent endpoint. The shared message
// list is reshaped first: system turns are pulled out of the sequence into
// the out-of-band system_instruction field, "assistant" maps to the vendor's
// "model" role, anything else defaults to "user".
type GeminiClient struct {
	http    *hzclient.Client
	apiKey  string
	model   string
	baseURL string
}

// NewGeminiClient creates the Gemini adapter for the given credential and
// model name.
func NewGeminiClient(apiKey, model string, optFns ...func(o *GeminiOptions)) (*GeminiClient, error) {
	opts := GeminiOptions{BaseURL: geminiBaseURL}
	for _, fn := range optFns {
		fn(&opts)
	}

	c, err := newHTTPClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &GeminiClient{
		http:    c,
		apiKey:  apiKey,
		model:   model,
		baseURL: opts.BaseURL,
	}, nil
}

// Provider returns "gemini".
func (c *GeminiClient) Provider() string { return config.ProviderGemini }

// Mock returns false.
func (c *GeminiClient) Mock() bool { return false }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata map[string]any `json:"usageMetadata"`
}

// Generate issues a single generateContent call. No retries.
func (c *GeminiClient) Generate(ctx context.Context, messages []entity.ChatMessage) (string, map[string]any, error) {
	payload := buildGeminiRequest(messages)
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
	req.SetRequestURI(fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model))
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.SetBody(body)

	if err := c.http.DoTimeout(ctx, req, resp, generateTimeout); err != nil {
		return "", nil, fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return "", nil, &UpstreamError{
			Provider:   config.ProviderGemini,
			StatusCode: status,
			Body:       string(resp.Body()),
		}
	}

	var parsed geminiResponse
	if err := sonic.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(parsed.Candidates) == 0 {
		return "", nil, fmt.Errorf("gemini: %w", ErrNoCandidates)
	}

	var text strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	usage := parsed.UsageMetadata
	if usage == nil {
		usage = map[string]any{}
	}

	return text.String(), map[string]any{
		"model": c.model,
		"usage": usage,
	}, nil
}

// buildGeminiRequest reshapes the shared message list into the vendor format.
// System turns keep their original order when joined into the single
// system_instruction field.
func buildGeminiRequest(messages []entity.ChatMessage) geminiRequest {
	var contents []geminiContent
	var systemInstructions []string

	for _, msg := range messages {
		if msg.Role == entity.RoleSystem {
			systemInstructions = append(systemInstructions, msg.Content)
			continue
		}

		role := "user"
		if msg.Role == entity.RoleAssistant {
			role = "model"
		}

		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	payload := geminiRequest{Contents: contents}
	if len(systemInstructions) > 0 {
		payload.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: strings.Join(systemInstructions, "\n\n")}},
		}
	}

	return payload
}
