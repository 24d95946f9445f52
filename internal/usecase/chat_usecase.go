package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/prxkc/instrat-mcp/internal/domain"
	"github.com/prxkc/instrat-mcp/internal/domain/entity"
)

// systemPrompt is the fixed first message of every assembled conversation.
const systemPrompt = "You are an assistant connected to an MCP demo server. " +
	"Use provided context to craft practical answers."

const maxMessageLength = 10000

// chatUsecase turns a chat request into an ordered message list, invokes the
// process-wide provider client, and shapes the response with diagnostic
// details. The pipeline is strictly linear, single-attempt, and aborts on the
// first tool or prompt failure.
type chatUsecase struct {
	llmClient domain.LLMClient
	catalog   domain.Catalog
	logger    *slog.Logger
}

// NewChatUsecase creates the chat orchestrator around the resolved provider
// client and the static catalog.
func NewChatUsecase(llmClient domain.LLMClient, catalog domain.Catalog, logger *slog.Logger) domain.ChatUsecase {
	return &chatUsecase{
		llmClient: llmClient,
		catalog:   catalog,
		logger:    logger,
	}
}

// Chat runs the orchestration pipeline:
//
//  1. Resolve referenced resources in order; unknown ids are silently skipped.
//  2. Invoke requested tools in order; the first failure aborts the call.
//  3. Render the optional prompt; a failure aborts the call.
//  4. Assemble the fixed-order message list and invoke the provider once.
//
// Provider failures of any kind surface as a single upstream error; nothing
// is retried.
func (u *chatUsecase) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	if err := u.validateChatRequest(req); err != nil {
		return nil, err
	}

	details := map[string]any{
		"resources": []any{},
		"tools":     []any{},
	}

	var contextSections []string
	resourceRecords := make([]any, 0, len(req.ContextResources))
	for _, id := range req.ContextResources {
		resource, ok := u.catalog.GetResource(id)
		if !ok {
			continue
		}
		contextSections = append(contextSections, formatResourceSection(resource))
		resourceRecords = append(resourceRecords, resource)
	}
	details["resources"] = resourceRecords

	var toolOutputs []string
	toolRecords := make([]any, 0, len(req.ToolCalls))
	for _, call := range req.ToolCalls {
		result, err := u.catalog.InvokeTool(call.ToolName, call.Arguments)
		if err != nil {
			u.logger.Warn("chat aborted by tool failure", "tool", call.ToolName, "error", err)
			return nil, err
		}
		toolOutputs = append(toolOutputs, fmt.Sprintf("%v", result.Output))
		toolRecords = append(toolRecords, map[string]any{
			"name":      call.ToolName,
			"arguments": call.Arguments,
			"output":    result.Output,
		})
	}
	details["tools"] = toolRecords

	var promptContent string
	if req.PromptName != "" {
		rendered, err := u.catalog.RenderPrompt(req.PromptName, req.PromptInputs)
		if err != nil {
			u.logger.Warn("chat aborted by prompt failure", "prompt", req.PromptName, "error", err)
			return nil, err
		}
		promptContent = rendered.Content
		details["prompt"] = map[string]any{
			"name":    req.PromptName,
			"inputs":  req.PromptInputs,
			"content": promptContent,
		}
	}

	messages := assembleMessages(promptContent, contextSections, toolOutputs, req.Message)

	completion, meta, err := u.llmClient.Generate(ctx, messages)
	if err != nil {
		u.logger.Error("llm generation failed",
			"provider", u.llmClient.Provider(),
			"error", err,
		)
		return nil, domain.NewUpstreamError("LLM interaction failed", err)
	}

	details["llm_meta"] = meta

	return &domain.ChatResponse{
		Message:  completion,
		Provider: u.llmClient.Provider(),
		Mock:     u.llmClient.Mock(),
		Details:  details,
	}, nil
}

// assembleMessages builds the ordered message list. The order is fixed:
// base system message, optional rendered prompt, optional context block,
// optional tool output block, then the user's message last.
func assembleMessages(promptContent string, contextSections, toolOutputs []string, userMessage string) []entity.ChatMessage {
	messages := []entity.ChatMessage{
		{Role: entity.RoleSystem, Content: systemPrompt},
	}

	if promptContent != "" {
		messages = append(messages, entity.ChatMessage{
			Role:    entity.RoleSystem,
			Content: promptContent,
		})
	}

	if len(contextSections) > 0 {
		messages = append(messages, entity.ChatMessage{
			Role:    entity.RoleSystem,
			Content: "Context snippets:\n" + strings.Join(contextSections, "\n\n"),
		})
	}

	if len(toolOutputs) > 0 {
		messages = append(messages, entity.ChatMessage{
			Role:    entity.RoleSystem,
			Content: "Tool outputs:\n" + strings.Join(toolOutputs, "\n"),
		})
	}

	messages = append(messages, entity.ChatMessage{
		Role:    entity.RoleUser,
		Content: userMessage,
	})

	return messages
}

// formatResourceSection renders one resource as a context block. The payload
// is JSON so the model sees the same serialized form the API returns.
func formatResourceSection(resource *entity.Resource) string {
	data, err := sonic.Marshal(resource.Data)
	if err != nil {
		data = []byte(fmt.Sprintf("%v", resource.Data))
	}
	return fmt.Sprintf("Resource %s:\n%s", resource.Title, data)
}

func (u *chatUsecase) validateChatRequest(req *domain.ChatRequest) error {
	if req == nil {
		return domain.ErrInvalidInput
	}
	if req.Message == "" {
		return domain.NewInvalidInputError("message is required")
	}
	if len(req.Message) > maxMessageLength {
		return domain.NewInvalidInputError(fmt.Sprintf("message too long (max %d characters)", maxMessageLength))
	}
	return nil
}
