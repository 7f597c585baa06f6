package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guestchat/backend/internal/api"
	"guestchat/backend/internal/model"
	"guestchat/backend/internal/service"
)

func TestRouter_Routes(t *testing.T) {
	handler, mockChatSvc := setupGuestHandler(t)
	server := httptest.NewServer(api.NewRouter(handler))
	defer server.Close()

	t.Run("Health check", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Conversation path parameter", func(t *testing.T) {
		mockChatSvc.EXPECT().GetConversation(mock.Anything, "conv-7").Return(&model.GuestConversation{ID: "conv-7"}, nil).Once()

		resp, err := http.Get(server.URL + "/api/v1/guest/conversations/conv-7")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Unknown route", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/v1/chats")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// TestGuestHandler_WebSocket drives a real WebSocket connection through the
// router: a message frame produces the service's events as frames.
func TestGuestHandler_WebSocket(t *testing.T) {
	handler, mockChatSvc := setupGuestHandler(t)
	server := httptest.NewServer(api.NewRouter(handler))
	defer server.Close()

	mockChatSvc.EXPECT().
		HandleMessage(mock.Anything, mock.MatchedBy(func(req *service.SendMessageRequest) bool { return req.Message == "Hello" }), mock.Anything).
		Run(emitEvents(
			model.StreamResponse{Event: model.EventStart, MessageID: "b1"},
			model.StreamResponse{Event: model.EventChunk, MessageID: "b1", Content: "Hi"},
			model.StreamResponse{Event: model.EventDone, MessageID: "b1", Done: true},
		)).Once()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/guest/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	t.Run("Unsupported frame", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(map[string]string{"type": "typing"}))

		var ev model.StreamResponse
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, model.EventError, ev.Event)
		assert.Contains(t, ev.Error, "unsupported frame type")
	})

	t.Run("Message streams events", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(map[string]string{"type": "message", "message": " Hello "}))

		var got []model.StreamResponse
		for len(got) < 3 {
			var ev model.StreamResponse
			require.NoError(t, conn.ReadJSON(&ev))
			got = append(got, ev)
		}
		assert.Equal(t, model.EventStart, got[0].Event)
		assert.Equal(t, "Hi", got[1].Content)
		assert.Equal(t, model.EventDone, got[2].Event)
	})
}
