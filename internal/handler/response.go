package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/prxkc/instrat-mcp/internal/domain"
)

// ErrorBody is the envelope for all error responses. Success responses use
// the raw record shapes of each endpoint.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse maps a domain error to an HTTP status and writes the error
// envelope. Internal causes are never exposed; only DomainError user
// messages reach callers.
func ErrorResponse(c *app.RequestContext, err error) {
	userMessage := func(err error) string {
		if domainErr, ok := err.(*domain.DomainError); ok {
			return domainErr.UserMessage()
		}
		return "an error occurred"
	}

	switch {
	case domain.IsNotFound(err):
		c.JSON(consts.StatusNotFound, ErrorBody{
			Code:    "NOT_FOUND",
			Message: userMessage(err),
		})
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, ErrorBody{
			Code:    "INVALID_INPUT",
			Message: userMessage(err),
		})
	case domain.IsUpstream(err):
		c.JSON(consts.StatusBadGateway, ErrorBody{
			Code:    "UPSTREAM_ERROR",
			Message: userMessage(err),
		})
	default:
		c.JSON(consts.StatusInternalServerError, ErrorBody{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}

// BadRequestResponse writes a bad-request error with a free-form message.
func BadRequestResponse(c *app.RequestContext, message string) {
	c.JSON(consts.StatusBadRequest, ErrorBody{
		Code:    "INVALID_INPUT",
		Message: message,
	})
}
