// Package llm implements the provider client abstraction: a mock offline
// client plus one adapter per supported language-model vendor, selected once
// at startup by the factory. Every adapter translates the shared
// entity.ChatMessage list into its vendor's wire format and back.
package llm

import (
	"errors"
	"fmt"
	"time"

	hzclient "github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
)

// generateTimeout bounds every outbound provider call. Abandoned requests are
// reclaimed by this deadline at the latest.
const generateTimeout = 30 * time.Second

// UpstreamError reports a non-2xx response from a provider endpoint. The raw
// body is kept for logs and wrapped causes; it must not be returned to API
// callers verbatim.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

var (
	// ErrMalformedResponse indicates a 2xx response missing the expected shape.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrNoCandidates indicates a provider returned zero candidate completions.
	ErrNoCandidates = errors.New("no candidates returned")
)

// newHTTPClient builds the outbound HTTP client shared by the live adapters.
// The standard dialer is required for TLS endpoints.
func newHTTPClient() (*hzclient.Client, error) {
	return hzclient.NewClient(
		hzclient.WithDialTimeout(10*time.Second),
		hzclient.WithMaxIdleConnDuration(60*time.Second),
		hzclient.WithDialer(standard.NewDialer()),
	)
}
