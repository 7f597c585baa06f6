package tunnel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OpaquePlaceholder is returned when the message was delivered but the reply
// could not be read.
const OpaquePlaceholder = "Your message was sent, but the reply could not be displayed. Please try again in a moment."

// OpaqueStrategy is the degraded delivery: only simple headers, an alternate
// path, and a response that is neither inspected nor read. Reaching the
// server at all counts as success.
type OpaqueStrategy struct {
	client *http.Client
	url    string
}

func NewOpaqueStrategy(client *http.Client, url string) *OpaqueStrategy {
	return &OpaqueStrategy{client: client, url: url}
}

func (s *OpaqueStrategy) Name() string { return "opaque" }

func (s *OpaqueStrategy) Send(ctx context.Context, req *Request, onChunk func(text string)) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/plain")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, networkError(s.Name(), err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if onChunk != nil {
		onChunk(OpaquePlaceholder)
	}
	return &Result{ResponseText: OpaquePlaceholder, Success: true, Opaque: true, Strategy: s.Name()}, nil
}
