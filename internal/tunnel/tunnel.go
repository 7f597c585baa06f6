// Package tunnel delivers guest messages to the externally hosted chat
// endpoint. The endpoint sits behind a tunnel whose cross-origin setup is
// unreliable, so delivery is an ordered cascade of strategies rather than a
// single request with retries.
package tunnel

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const skipBrowserWarningHeader = "ngrok-skip-browser-warning"

// Request is the body sent to the chat endpoint.
type Request struct {
	Message string `json:"message"`
	// TargetMessageID is the bot message being filled; it is not sent.
	TargetMessageID string `json:"-"`
}

// Result is the outcome of a successful strategy.
type Result struct {
	ResponseText string
	Success      bool
	// Synthetic marks a locally generated reply.
	Synthetic bool
	// Opaque marks a delivery whose response could not be read.
	Opaque   bool
	Strategy string
}

// Genuine reports whether the text really came from the remote model.
func (r *Result) Genuine() bool {
	return r != nil && r.Success && !r.Synthetic && !r.Opaque
}

// Sender is the contract consumed by the chat service.
type Sender interface {
	Send(ctx context.Context, req *Request, onChunk func(text string)) (*Result, error)
}

// Strategy is one way of reaching the endpoint.
type Strategy interface {
	Name() string
	Send(ctx context.Context, req *Request, onChunk func(text string)) (*Result, error)
}

// Kind classifies transport failures.
type Kind string

const (
	// KindNetwork: no response reached us.
	KindNetwork Kind = "network"
	// KindHTTP: the server answered with a non-2xx status.
	KindHTTP Kind = "http"
	// KindRemote: the server answered but reported a failure or sent nothing.
	KindRemote Kind = "remote"
)

// TransportError is the uniform error of every strategy.
type TransportError struct {
	Strategy   string
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tunnel %s: %s error (status %d): %s", e.Strategy, e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("tunnel %s: %s error: %s", e.Strategy, e.Kind, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UserMessage is the text shown to the guest for this failure.
func (e *TransportError) UserMessage() string {
	switch e.Kind {
	case KindNetwork:
		return "Unable to reach the assistant. Please check your connection and try again."
	case KindHTTP:
		if e.Message != "" {
			return fmt.Sprintf("The assistant returned an error (%d): %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("The assistant returned an error (%d).", e.StatusCode)
	default:
		if e.Message != "" {
			return e.Message
		}
		return "The assistant could not answer right now."
	}
}

func networkError(strategy string, err error) *TransportError {
	return &TransportError{Strategy: strategy, Kind: KindNetwork, Message: err.Error(), Err: err}
}

// Options configures the default cascade.
type Options struct {
	BaseURL      string
	ChatPath     string
	FallbackPath string
	// Origin, when set, is sent on the standard request.
	Origin        string
	Timeout       time.Duration
	FlushInterval time.Duration

	SyntheticFallback  bool
	SyntheticText      string
	SyntheticWordDelay time.Duration

	HTTPClient *http.Client
}

// NewClient builds the standard → opaque → synthetic cascade.
func NewClient(opts Options) *Cascade {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	strategies := []Strategy{
		NewStandardStrategy(client, opts.BaseURL+opts.ChatPath, opts.Origin, opts.FlushInterval),
		NewOpaqueStrategy(client, opts.BaseURL+opts.FallbackPath),
	}
	if opts.SyntheticFallback {
		strategies = append(strategies, NewSyntheticStrategy(opts.SyntheticText, opts.SyntheticWordDelay))
	}
	return NewCascade(strategies...)
}
