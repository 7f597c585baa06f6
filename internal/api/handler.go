package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	app_errors "guestchat/backend/internal/errors"
	"guestchat/backend/internal/interfaces"
	"guestchat/backend/internal/model"
	"guestchat/backend/internal/service"
)

// GuestHandler serves the guest chat endpoints.
type GuestHandler struct {
	service  interfaces.ChatService
	upgrader websocket.Upgrader
}

func NewGuestHandler(svc interfaces.ChatService) *GuestHandler {
	return &GuestHandler{
		service: svc,
		upgrader: websocket.Upgrader{
			// The gateway fronts a single guest UI served from another origin.
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleStartSession godoc
// @Summary      Start a guest session
// @Description  Creates a new guest session and returns the welcome message. The previous conversation stays in history.
// @Tags         Session
// @Produce      json
// @Success      201  {object}  model.Session
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/guest/session [post]
func (h *GuestHandler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.StartSession(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}

// HandleGetSession godoc
// @Summary      Get the active guest session
// @Description  Returns the active session with its in-progress conversation, starting a session if none exists.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  model.Session
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/guest/session [get]
func (h *GuestHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CurrentSession(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleSendMessage godoc
// @Summary      Send a guest message
// @Description  Sends a message to the assistant. By default the reply is streamed as Server-Sent Events (start, chunk, done or error); with "stream": false a single JSON reply is returned.
// @Tags         Messages
// @Accept       json
// @Produce      text/event-stream
// @Produce      json
// @Param        request  body      service.SendMessageRequest  true  "Guest message"
// @Success      200      {object}  model.Reply
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/guest/messages [post]
func (h *GuestHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	if !req.WantsStream() {
		reply, err := h.service.SendMessage(r.Context(), &req)
		if err != nil {
			respondWithError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, reply)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	streamChan := make(chan model.StreamResponse)
	go h.service.HandleMessage(r.Context(), &req, streamChan)

	// The channel is drained to the end so the turn can finish and be saved
	// even after the client went away.
	clientGone := false
	for event := range streamChan {
		if clientGone {
			continue
		}
		if err := writeStreamEvent(w, event); err != nil {
			slog.Warn("Client disconnected during stream", "message_id", event.MessageID, "error", err)
			clientGone = true
		}
	}
	slog.Debug("Finished streaming response")
}

// HandleListConversations godoc
// @Summary      List saved conversations
// @Description  Returns the saved guest conversations, most recently saved first.
// @Tags         Conversations
// @Produce      json
// @Success      200  {array}   model.GuestConversation
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/guest/conversations [get]
func (h *GuestHandler) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.service.ListConversations(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conversations)
}

// HandleGetConversation godoc
// @Summary      Get a saved conversation
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path      string  true  "Conversation ID"
// @Success      200             {object}  model.GuestConversation
// @Failure      404             {object}  ErrorResponse
// @Router       /v1/guest/conversations/{conversationID} [get]
func (h *GuestHandler) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	conversation, err := h.service.GetConversation(r.Context(), conversationID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conversation)
}

// HandleClearHistory godoc
// @Summary      Clear conversation history
// @Description  Removes every saved conversation at once.
// @Tags         Conversations
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/guest/conversations [delete]
func (h *GuestHandler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearHistory(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
