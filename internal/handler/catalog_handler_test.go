package handler

import (
	"bytes"
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
	"github.com/prxkc/instrat-mcp/internal/usecase"
)

func newCatalogTestEngine() *route.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := usecase.NewCatalogUsecase(catalog.New(), logger)
	h := NewCatalogHandler(uc, logger)

	engine := route.NewEngine(hzconfig.NewOptions([]hzconfig.Option{}))
	engine.GET("/mcp/resources", h.ListResources)
	engine.GET("/mcp/resources/:id", h.GetResource)
	engine.GET("/mcp/tools", h.ListTools)
	engine.POST("/mcp/tools/invoke", h.InvokeTool)
	engine.GET("/mcp/prompts", h.ListPrompts)
	engine.POST("/mcp/prompts/render", h.RenderPrompt)
	return engine
}

func jsonBody(s string) *ut.Body {
	return &ut.Body{Body: bytes.NewBufferString(s), Len: len(s)}
}

var jsonHeader = ut.Header{Key: "Content-Type", Value: "application/json"}

func TestListResourcesEndpoint(t *testing.T) {
	engine := newCatalogTestEngine()

	w := ut.PerformRequest(engine, consts.MethodGet, "/mcp/resources", nil)
	resp := w.Result()
	require.Equal(t, consts.StatusOK, resp.StatusCode())

	var resources []map[string]any
	require.NoError(t, sonic.Unmarshal(resp.Body(), &resources))
	require.Len(t, resources, 2)
	assert.Equal(t, "company:outline", resources[0]["id"])
	assert.Equal(t, "product:faq", resources[1]["id"])
}

func TestGetResourceEndpoint(t *testing.T) {
	engine := newCatalogTestEngine()

	w := ut.PerformRequest(engine, consts.MethodGet, "/mcp/resources/company:outline", nil)
	resp := w.Result()
	require.Equal(t, consts.StatusOK, resp.StatusCode())

	var resource map[string]any
	require.NoError(t, sonic.Unmarshal(resp.Body(), &resource))
	assert.Equal(t, "company:outline", resource["id"])
	assert.Equal(t, "Company Overview", resource["title"])
}

func TestGetResourceEndpointNotFound(t *testing.T) {
	engine := newCatalogTestEngine()

	w := ut.PerformRequest(engine, consts.MethodGet, "/mcp/resources/nope", nil)
	resp := w.Result()
	require.Equal(t, consts.StatusNotFound, resp.StatusCode())

	var body ErrorBody
	require.NoError(t, sonic.Unmarshal(resp.Body(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Contains(t, body.Message, "nope")
}

func TestInvokeToolEndpoint(t *testing.T) {
	engine := newCatalogTestEngine()

	w := ut.PerformRequest(engine, consts.MethodPost, "/mcp/tools/invoke",
		jsonBody(`{"tool_name": "math.add", "arguments": {"a": 2, "b": 3}}`), jsonHeader)
	resp := w.Result()
	require.Equal(t, consts.StatusOK, resp.StatusCode())

	var result map[string]any
	require.NoError(t, sonic.Unmarshal(resp.Body(), &result))
	assert.Equal(t, float64(5), result["output"])
}

func TestInvokeToolEndpointErrors(t *testing.T) {
	engine := newCatalogTestEngine()

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		msgContains string
	}{
		{
			name:        "unknown tool",
			body:        `{"tool_name": "nope", "arguments": {}}`,
			wantStatus:  consts.StatusBadRequest,
			msgContains: "Unknown tool: nope",
		},
		{
			name:        "bad arguments",
			body:        `{"tool_name": "math.add", "arguments": {"a": "x", "b": 3}}`,
			wantStatus:  consts.StatusBadRequest,
			msgContains: "must be numbers",
		},
		{
			name:        "malformed json",
			body:        `{"tool_name": `,
			wantStatus:  consts.StatusBadRequest,
			msgContains: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ut.PerformRequest(engine, consts.MethodPost, "/mcp/tools/invoke",
				jsonBody(tt.body), jsonHeader)
			resp := w.Result()
			require.Equal(t, tt.wantStatus, resp.StatusCode())

			var body ErrorBody
			require.NoError(t, sonic.Unmarshal(resp.Body(), &body))
			assert.Equal(t, "INVALID_INPUT", body.Code)
			assert.Contains(t, body.Message, tt.msgContains)
		})
	}
}

func TestListPromptsEndpoint(t *testing.T) {
	engine := newCatalogTestEngine()

	w := ut.PerformRequest(engine, consts.MethodGet, "/mcp/prompts", nil)
	resp := w.Result()
	require.Equal(t, consts.StatusOK, resp.StatusCode())

	var prompts []map[string]any
	require.NoError(t, sonic.Unmarshal(resp.Body(), &prompts))
	require.Len(t, prompts, 2)
	assert.Equal(t, "summarize-resource", prompts[0]["name"])
}

func TestRenderPromptEndpoint(t *testing.T) {
	engine := newCatalogTestEngine()

	w := ut.PerformRequest(engine, consts.MethodPost, "/mcp/prompts/render",
		jsonBody(`{"prompt_name": "support-reply", "inputs": {"customer_message": "hi", "context": "faq"}}`),
		jsonHeader)
	resp := w.Result()
	require.Equal(t, consts.StatusOK, resp.StatusCode())

	var rendered map[string]any
	require.NoError(t, sonic.Unmarshal(resp.Body(), &rendered))
	content, _ := rendered["content"].(string)
	assert.Contains(t, content, "Customer message:\nhi")
}

func TestRenderPromptEndpointMissingInputs(t *testing.T) {
	engine := newCatalogTestEngine()

	w := ut.PerformRequest(engine, consts.MethodPost, "/mcp/prompts/render",
		jsonBody(`{"prompt_name": "support-reply", "inputs": {}}`), jsonHeader)
	resp := w.Result()
	require.Equal(t, consts.StatusBadRequest, resp.StatusCode())

	var body ErrorBody
	require.NoError(t, sonic.Unmarshal(resp.Body(), &body))
	assert.Contains(t, body.Message, "Missing prompt inputs: customer_message, context")
}
