package handler

import (
	"io"
	"log/slog"
	"testing"

	hzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytedance/sonic"

	"github.com/prxkc/instrat-mcp/internal/catalog"
	"github.com/prxkc/instrat-mcp/internal/handler/dto"
	"github.com/prxkc/instrat-mcp/internal/llm"
	"github.com/prxkc/instrat-mcp/internal/usecase"
)

// newChatTestEngine wires the chat route against the offline mock client.
func newChatTestEngine() *route.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := usecase.NewChatUsecase(llm.NewMockClient(), catalog.New(), logger)
	h := NewChatHandler(uc, logger)

	engine := route.NewEngine(hzconfig.NewOptions([]hzconfig.Option{}))
	engine.POST("/mcp/chat", h.Chat)
	return engine
}

func TestChatEndpoint(t *testing.T) {
	engine := newChatTestEngine()

	w := ut.PerformRequest(engine, consts.MethodPost, "/mcp/chat",
		jsonBody(`{"message": "what is the uptime SLA?"}`), jsonHeader)
	resp := w.Result()
	require.Equal(t, consts.StatusOK, resp.StatusCode())

	var body dto.ChatResponse
	require.NoError(t, sonic.Unmarshal(resp.Body(), &body))
	assert.Equal(t, "mock", body.Provider)
	assert.True(t, body.Mock)
	assert.Contains(t, body.Message, "what is the uptime SLA?")
	assert.Contains(t, body.Details, "llm_meta")
}

func TestChatEndpointFullPipeline(t *testing.T) {
	engine := newChatTestEngine()

	req := `{
		"message": "put it together",
		"context_resources": ["company:outline", "unknown:id"],
		"tool_calls": [{"tool_name": "math.add", "arguments": {"a": 1, "b": 2}}],
		"prompt_name": "support-reply",
		"prompt_inputs": {"customer_message": "hello", "context": "faq"}
	}`
	w := ut.PerformRequest(engine, consts.MethodPost, "/mcp/chat", jsonBody(req), jsonHeader)
	resp := w.Result()
	require.Equal(t, consts.StatusOK, resp.StatusCode())

	var body dto.ChatResponse
	require.NoError(t, sonic.Unmarshal(resp.Body(), &body))

	resources, ok := body.Details["resources"].([]any)
	require.True(t, ok)
	assert.Len(t, resources, 1, "unknown resource ids are skipped")

	tools, ok := body.Details["tools"].([]any)
	require.True(t, ok)
	require.Len(t, tools, 1)
	tool := tools[0].(map[string]any)
	assert.Equal(t, "math.add", tool["name"])
	assert.Equal(t, float64(3), tool["output"])

	prompt, ok := body.Details["prompt"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "support-reply", prompt["name"])
}

func TestChatEndpointErrors(t *testing.T) {
	engine := newChatTestEngine()

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantCode    string
		msgContains string
	}{
		{
			name:        "empty message",
			body:        `{"message": ""}`,
			wantStatus:  consts.StatusBadRequest,
			wantCode:    "INVALID_INPUT",
			msgContains: "message is required",
		},
		{
			name:        "failing tool call",
			body:        `{"message": "hi", "tool_calls": [{"tool_name": "nope", "arguments": {}}]}`,
			wantStatus:  consts.StatusBadRequest,
			wantCode:    "INVALID_INPUT",
			msgContains: "Unknown tool: nope",
		},
		{
			name:        "failing prompt",
			body:        `{"message": "hi", "prompt_name": "nope"}`,
			wantStatus:  consts.StatusBadRequest,
			wantCode:    "INVALID_INPUT",
			msgContains: "Unknown prompt: nope",
		},
		{
			name:        "malformed json",
			body:        `{"message": `,
			wantStatus:  consts.StatusBadRequest,
			wantCode:    "INVALID_INPUT",
			msgContains: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ut.PerformRequest(engine, consts.MethodPost, "/mcp/chat",
				jsonBody(tt.body), jsonHeader)
			resp := w.Result()
			require.Equal(t, tt.wantStatus, resp.StatusCode())

			var body ErrorBody
			require.NoError(t, sonic.Unmarshal(resp.Body(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Contains(t, body.Message, tt.msgContains)
		})
	}
}
