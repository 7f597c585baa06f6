package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"guestchat/backend/internal/model"
	"guestchat/backend/internal/service"
)

const (
	wsPongWait     = 60 * time.Second
	wsPingInterval = 54 * time.Second
	wsWriteWait    = 10 * time.Second

	wsTypeMessage = "message"
)

// wsInbound is a frame sent by the client.
type wsInbound struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// wsConn serializes writes; a reply can stream while the read loop runs.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) send(event model.StreamResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return c.conn.WriteJSON(event)
}

// HandleWebSocket godoc
// @Summary      Guest chat over WebSocket
// @Description  Upgrades to a WebSocket. Inbound frames are {"type":"message","message":"..."}; outbound frames are stream events.
// @Tags         Messages
// @Success      101
// @Router       /v1/guest/ws [get]
func (h *GuestHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	ws := &wsConn{conn: conn}
	var turns sync.WaitGroup
	// In-flight turns are cancelled first, then waited for.
	defer turns.Wait()
	defer cancel()

	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go pingLoop(ctx, conn)

	slog.Info("WebSocket connected", "remote_addr", r.RemoteAddr)

	for {
		var msg wsInbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("WebSocket read error", "error", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))

		if msg.Type != wsTypeMessage {
			_ = ws.send(model.StreamResponse{Event: model.EventError, Done: true, Error: "unsupported frame type: " + msg.Type})
			continue
		}
		req := &service.SendMessageRequest{Message: strings.TrimSpace(msg.Message)}
		if err := validateRequest(req); err != nil {
			_ = ws.send(model.StreamResponse{Event: model.EventError, Done: true, Error: err.Error()})
			continue
		}

		turns.Add(1)
		go func() {
			defer turns.Done()
			h.streamTurn(ctx, ws, req)
		}()
	}
}

// streamTurn forwards one turn's events. After a failed write the rest are
// dropped; the read loop notices the closed connection.
func (h *GuestHandler) streamTurn(ctx context.Context, ws *wsConn, req *service.SendMessageRequest) {
	streamChan := make(chan model.StreamResponse)
	go h.service.HandleMessage(ctx, req, streamChan)

	writeFailed := false
	for event := range streamChan {
		if writeFailed {
			continue
		}
		if err := ws.send(event); err != nil {
			slog.Warn("WebSocket write failed", "message_id", event.MessageID, "error", err)
			writeFailed = true
		}
	}
}

func pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// WriteControl may run concurrently with the other writers.
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
