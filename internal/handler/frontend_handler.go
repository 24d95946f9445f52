package handler

import (
	"context"
	"os"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// FrontendHandler serves the static demo frontend.
type FrontendHandler struct {
	indexPath string
}

// NewFrontendHandler creates the frontend handler for the configured index
// file path.
func NewFrontendHandler(indexPath string) *FrontendHandler {
	return &FrontendHandler{indexPath: indexPath}
}

// Index handles GET /. Responds 404 when the frontend file is absent.
func (h *FrontendHandler) Index(ctx context.Context, c *app.RequestContext) {
	if _, err := os.Stat(h.indexPath); err != nil {
		c.JSON(consts.StatusNotFound, ErrorBody{
			Code:    "NOT_FOUND",
			Message: "Frontend index not found.",
		})
		return
	}
	c.File(h.indexPath)
}
