package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prxkc/instrat-mcp/internal/domain"
)

func TestListToolsSorted(t *testing.T) {
	c := New()

	tools := c.ListTools()
	require.Len(t, tools, 2)
	assert.Equal(t, "math.add", tools[0].Name)
	assert.Equal(t, "time.now", tools[1].Name)
}

func TestInvokeMathAdd(t *testing.T) {
	c := New()

	tests := []struct {
		name        string
		arguments   map[string]any
		want        float64
		errContains string
	}{
		{
			name:      "floats",
			arguments: map[string]any{"a": 2.0, "b": 3.0},
			want:      5,
		},
		{
			name:      "ints",
			arguments: map[string]any{"a": 2, "b": 3},
			want:      5,
		},
		{
			name:      "numeric strings are coerced",
			arguments: map[string]any{"a": "2.5", "b": "0.5"},
			want:      3,
		},
		{
			name:      "mixed types",
			arguments: map[string]any{"a": 1, "b": "2"},
			want:      3,
		},
		{
			name:        "non-numeric string",
			arguments:   map[string]any{"a": "x", "b": 3.0},
			errContains: "must be numbers",
		},
		{
			name:        "missing argument",
			arguments:   map[string]any{"a": 2.0},
			errContains: "must be numbers",
		},
		{
			name:        "nil arguments",
			arguments:   nil,
			errContains: "must be numbers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.InvokeTool("math.add", tt.arguments)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.True(t, domain.IsInvalidInput(err))
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Output)
		})
	}
}

func TestInvokeTimeNow(t *testing.T) {
	c := New()

	result, err := c.InvokeTool("time.now", nil)
	require.NoError(t, err)

	stamp, ok := result.Output.(string)
	require.True(t, ok)

	parsed, err := time.Parse(time.RFC3339Nano, stamp)
	require.NoError(t, err, "output must be a valid RFC 3339 timestamp")
	assert.True(t, strings.HasSuffix(stamp, "Z"), "UTC timestamps carry the Z suffix")
	assert.Equal(t, time.UTC, parsed.Location())
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}

func TestInvokeUnknownTool(t *testing.T) {
	c := New()

	_, err := c.InvokeTool("math.subtract", nil)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "Unknown tool: math.subtract")
}
