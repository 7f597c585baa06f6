package tunnel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"guestchat/backend/internal/stream"
)

// StandardStrategy is a regular cross-origin POST with explicit headers. Its
// body is either streamed through the reassembler or read whole.
type StandardStrategy struct {
	client        *http.Client
	url           string
	origin        string
	flushInterval time.Duration
}

func NewStandardStrategy(client *http.Client, url, origin string, flushInterval time.Duration) *StandardStrategy {
	return &StandardStrategy{client: client, url: url, origin: origin, flushInterval: flushInterval}
}

func (s *StandardStrategy) Name() string { return "standard" }

func (s *StandardStrategy) Send(ctx context.Context, req *Request, onChunk func(text string)) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json, text/plain, */*")
	httpReq.Header.Set(skipBrowserWarningHeader, "true")
	if s.origin != "" {
		httpReq.Header.Set("Origin", s.origin)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, networkError(s.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{
			Strategy:   s.Name(),
			Kind:       KindHTTP,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(bodyBytes)),
		}
	}

	var text string
	if onChunk == nil {
		text, err = s.readWhole(resp.Body)
	} else {
		text, err = s.readStream(resp.Body, req.TargetMessageID, onChunk)
	}
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, &TransportError{Strategy: s.Name(), Kind: KindRemote, Message: "empty response"}
	}
	return &Result{ResponseText: text, Success: true, Strategy: s.Name()}, nil
}

func (s *StandardStrategy) readWhole(body io.Reader) (string, error) {
	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return "", networkError(s.Name(), fmt.Errorf("could not read response body: %w", err))
	}
	text, err := stream.ExtractWhole(bodyBytes)
	if err != nil {
		return "", &TransportError{Strategy: s.Name(), Kind: KindRemote, Message: err.Error(), Err: err}
	}
	return text, nil
}

// readStream feeds the body to a reassembler as it arrives. Once text has been
// handed to the sink, a broken connection ends the reply instead of failing
// it, since the guest has already seen that text. A body without the envelope
// header is decoded again as a whole, so a {"success": false} answer fails the
// same way it does when read in one piece.
func (s *StandardStrategy) readStream(body io.Reader, targetMessageID string, onChunk func(text string)) (string, error) {
	r := stream.New(onChunk, stream.WithFlushInterval(s.flushInterval))
	r.Reset(targetMessageID)

	var raw bytes.Buffer
	buf := make([]byte, 4096)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			raw.Write(buf[:n])
			r.Feed(string(buf[:n]))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if r.Accumulated() == "" {
				return "", networkError(s.Name(), fmt.Errorf("stream interrupted: %w", err))
			}
			slog.Warn("Tunnel stream interrupted, keeping partial reply", "message_id", targetMessageID, "error", err)
			break
		}
	}

	text := r.Finish()
	if r.State() != stream.StateLiteral {
		return text, nil
	}
	text, err := stream.ExtractWhole(raw.Bytes())
	if err != nil {
		return "", &TransportError{Strategy: s.Name(), Kind: KindRemote, Message: err.Error(), Err: err}
	}
	return text, nil
}
