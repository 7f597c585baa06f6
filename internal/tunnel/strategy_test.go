package tunnel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestchat/backend/internal/stream"
)

// TestStandardStrategy_Streaming checks the normal path: the endpoint answers
// with the line-framed envelope in several network writes.
//
// GOAL: The strategy sends the expected headers and body, hands every piece
// of text to the sink, and returns the normalized full reply.
func TestStandardStrategy_Streaming(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		for _, part := range []string{`{"success": true, "resp`, `onse": "Hello there\n"`, "\n", `Bye"}`} {
			_, _ = fmt.Fprint(w, part)
			flusher.Flush()
		}
	}))
	defer server.Close()

	strategy := NewStandardStrategy(server.Client(), server.URL+"/chat", "https://bank.example", time.Millisecond)

	var chunks []string
	res, err := strategy.Send(context.Background(), &Request{Message: "hi", TargetMessageID: "bot-1"}, func(text string) {
		chunks = append(chunks, text)
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello there\nBye", res.ResponseText)
	assert.True(t, res.Genuine())
	assert.Equal(t, "standard", res.Strategy)
	assert.Equal(t, "Hello there\nBye", strings.Join(chunks, ""))

	assert.Equal(t, map[string]string{"message": "hi"}, gotBody)
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "true", gotHeaders.Get(skipBrowserWarningHeader))
	assert.Equal(t, "https://bank.example", gotHeaders.Get("Origin"))
	assert.NotEmpty(t, gotHeaders.Get("Accept"))
}

func TestStandardStrategy_WholeBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "response": "Line one\\n\\n\\n\\nLine two"}`))
	}))
	defer server.Close()

	strategy := NewStandardStrategy(server.Client(), server.URL, "", 0)

	res, err := strategy.Send(context.Background(), &Request{Message: "hi"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Line one\n\nLine two", res.ResponseText)
}

func TestStandardStrategy_Failures(t *testing.T) {
	testCases := []struct {
		name       string
		handler    http.HandlerFunc
		onChunk    func(string)
		wantKind   Kind
		wantStatus int
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream down", http.StatusBadGateway)
			},
			onChunk:    func(string) {},
			wantKind:   KindHTTP,
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "remote reports failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success": false, "message": "model overloaded"}`))
			},
			wantKind: KindRemote,
		},
		{
			name: "remote reports failure while streaming",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{\"success\": false,\n\"message\": \"model overloaded\"}\n"))
			},
			onChunk:  func(string) {},
			wantKind: KindRemote,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			onChunk:  func(string) {},
			wantKind: KindRemote,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			strategy := NewStandardStrategy(server.Client(), server.URL, "", 0)
			res, err := strategy.Send(context.Background(), &Request{Message: "hi"}, tc.onChunk)

			require.Error(t, err)
			assert.Nil(t, res)
			var terr *TransportError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, tc.wantKind, terr.Kind)
			assert.Equal(t, tc.wantStatus, terr.StatusCode)
			assert.NotEmpty(t, terr.UserMessage())
		})
	}

	t.Run("remote failure keeps the sentinel", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "message": "model overloaded"}`))
		}))
		defer server.Close()

		_, err := NewStandardStrategy(server.Client(), server.URL, "", 0).Send(context.Background(), &Request{Message: "hi"}, nil)
		assert.ErrorIs(t, err, stream.ErrRemoteFailure)

		_, err = NewStandardStrategy(server.Client(), server.URL, "", 0).Send(context.Background(), &Request{Message: "hi"}, func(string) {})
		assert.ErrorIs(t, err, stream.ErrRemoteFailure)
		assert.ErrorContains(t, err, "model overloaded")
	})
}

// TestStandardStrategy_PlainTextStream: a body without the envelope is still a
// genuine reply, identical whether streamed or read whole.
func TestStandardStrategy_PlainTextStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Branches open at 8:00\nand close at 17:00\n"))
	}))
	defer server.Close()

	strategy := NewStandardStrategy(server.Client(), server.URL, "", 0)

	streamed, err := strategy.Send(context.Background(), &Request{Message: "hi"}, func(string) {})
	require.NoError(t, err)
	whole, err := strategy.Send(context.Background(), &Request{Message: "hi"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Branches open at 8:00\nand close at 17:00", streamed.ResponseText)
	assert.Equal(t, whole.ResponseText, streamed.ResponseText)
	assert.True(t, streamed.Genuine())
}

func TestStandardStrategy_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewStandardStrategy(http.DefaultClient, url, "", 0).Send(context.Background(), &Request{Message: "hi"}, func(string) {})

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, KindNetwork, terr.Kind)
	assert.Equal(t, "standard", terr.Strategy)
}

// TestOpaqueStrategy checks that the degraded delivery never looks at the
// response: even an error status counts as delivered.
func TestOpaqueStrategy(t *testing.T) {
	var gotContentType, gotPath string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success": true, "response": "never read"}`))
	}))
	defer server.Close()

	strategy := NewOpaqueStrategy(server.Client(), server.URL+"/api/chat")

	var chunks []string
	res, err := strategy.Send(context.Background(), &Request{Message: "hello"}, func(text string) {
		chunks = append(chunks, text)
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.Opaque)
	assert.False(t, res.Synthetic)
	assert.False(t, res.Genuine())
	assert.Equal(t, OpaquePlaceholder, res.ResponseText)
	assert.Equal(t, []string{OpaquePlaceholder}, chunks)

	assert.Equal(t, "text/plain", gotContentType)
	assert.Equal(t, "/api/chat", gotPath)
	assert.JSONEq(t, `{"message": "hello"}`, string(gotBody))
}

func TestOpaqueStrategy_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewOpaqueStrategy(http.DefaultClient, url).Send(context.Background(), &Request{Message: "hi"}, nil)

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, KindNetwork, terr.Kind)
}

func TestSyntheticStrategy(t *testing.T) {
	strategy := NewSyntheticStrategy("Sorry,  we are   offline.", 0)

	var chunks []string
	res, err := strategy.Send(context.Background(), &Request{Message: "hi"}, func(text string) {
		chunks = append(chunks, text)
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.Synthetic)
	assert.False(t, res.Genuine())
	assert.Equal(t, "Sorry, we are offline.", res.ResponseText)
	assert.Equal(t, []string{"Sorry,", " we", " are", " offline."}, chunks)

	t.Run("default text", func(t *testing.T) {
		res, err := NewSyntheticStrategy("", 0).Send(context.Background(), &Request{}, nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultSyntheticText, res.ResponseText)
	})

	t.Run("cancelled while typing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := NewSyntheticStrategy("one two", time.Hour).Send(ctx, &Request{}, func(string) {})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, res)
	})
}

func TestTransportError_UserMessage(t *testing.T) {
	assert.Contains(t, (&TransportError{Kind: KindNetwork}).UserMessage(), "Unable to reach")
	assert.Equal(t, "The assistant returned an error (503): busy", (&TransportError{Kind: KindHTTP, StatusCode: 503, Message: "busy"}).UserMessage())
	assert.Equal(t, "The assistant returned an error (500).", (&TransportError{Kind: KindHTTP, StatusCode: 500}).UserMessage())
	assert.Equal(t, "model overloaded", (&TransportError{Kind: KindRemote, Message: "model overloaded"}).UserMessage())

	cause := errors.New("dial tcp: refused")
	err := networkError("standard", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "tunnel standard: network error: dial tcp: refused", err.Error())
}
