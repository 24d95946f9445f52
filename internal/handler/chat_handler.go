package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/prxkc/instrat-mcp/internal/domain"
	"github.com/prxkc/instrat-mcp/internal/handler/dto"
)

// ChatHandler serves POST /mcp/chat.
type ChatHandler struct {
	usecase domain.ChatUsecase
	logger  *slog.Logger
}

// NewChatHandler creates the chat handler.
func NewChatHandler(uc domain.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{usecase: uc, logger: logger}
}

// Chat binds the chat request, runs the orchestration pipeline, and writes
// the completion plus assembly details. Tool and prompt failures map to 400,
// provider failures to 502.
func (h *ChatHandler) Chat(ctx context.Context, c *app.RequestContext) {
	var req dto.ChatRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Warn("failed to bind chat request", "error", err)
		BadRequestResponse(c, "invalid request body")
		return
	}

	toolCalls := make([]domain.ToolCall, 0, len(req.ToolCalls))
	for _, call := range req.ToolCalls {
		toolCalls = append(toolCalls, domain.ToolCall{
			ToolName:  call.ToolName,
			Arguments: call.Arguments,
		})
	}

	chatReq := &domain.ChatRequest{
		Message:          req.Message,
		ContextResources: req.ContextResources,
		ToolCalls:        toolCalls,
		PromptName:       req.PromptName,
		PromptInputs:     req.PromptInputs,
	}

	h.logger.Info("chat request received",
		"resources", len(req.ContextResources),
		"tool_calls", len(req.ToolCalls),
		"prompt", req.PromptName,
	)

	resp, err := h.usecase.Chat(ctx, chatReq)
	if err != nil {
		h.logger.Error("chat failed", "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.ChatResponse{
		Message:  resp.Message,
		Provider: resp.Provider,
		Mock:     resp.Mock,
		Details:  resp.Details,
	})
}
