package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prxkc/instrat-mcp/internal/catalog"
	"github.com/prxkc/instrat-mcp/internal/domain"
)

func newTestCatalogUsecase() *CatalogUsecase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCatalogUsecase(catalog.New(), logger)
}

func TestCatalogGetResource(t *testing.T) {
	uc := newTestCatalogUsecase()

	resource, err := uc.GetResource("product:faq")
	require.NoError(t, err)
	assert.Equal(t, "Product FAQ", resource.Title)
}

func TestCatalogGetResourceNotFound(t *testing.T) {
	uc := newTestCatalogUsecase()

	_, err := uc.GetResource("missing:id")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Contains(t, err.Error(), "missing:id")
}

func TestCatalogListings(t *testing.T) {
	uc := newTestCatalogUsecase()

	assert.Len(t, uc.ListResources(), 2)
	assert.Len(t, uc.ListTools(), 2)
	assert.Len(t, uc.ListPrompts(), 2)
}

func TestCatalogInvokeToolClassification(t *testing.T) {
	uc := newTestCatalogUsecase()

	_, err := uc.InvokeTool("bogus", nil)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err), "unknown tools are invalid input, not not-found")
}
