package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	app_errors "guestchat/backend/internal/errors"
	"guestchat/backend/internal/model"
	"guestchat/backend/internal/repository"
	"guestchat/backend/internal/tunnel"
)

const (
	// MaxMessageLength is the longest guest message accepted, in runes.
	MaxMessageLength = 4000
	// titleLength is the number of runes of the first message kept as title.
	titleLength = 50

	DefaultWelcomeMessage = "Hello! I'm the bank's virtual assistant. " +
		"Ask me about accounts, cards, loans or branch opening hours."

	genericFailureMessage   = "Sorry, something went wrong. Please try again."
	cancelledFailureMessage = "The request was cancelled before the assistant answered."
)

// SendMessageRequest is a guest message submitted by a client.
type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
	// Stream selects SSE (default) or a single JSON reply.
	Stream *bool `json:"stream,omitempty"`
}

// WantsStream reports whether the client asked for a streamed reply.
func (r *SendMessageRequest) WantsStream() bool {
	return r.Stream == nil || *r.Stream
}

// GuestChatService runs guest sessions: it sends messages through the tunnel,
// reports streamed text and decides what is written to history.
type GuestChatService struct {
	repo    repository.Repository
	sender  tunnel.Sender
	welcome string
	now     func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}

	// sessionMu orders session changes against updates of the current
	// conversation, so a reply finishing after StartSession cannot bring the
	// old conversation back.
	sessionMu sync.Mutex
}

func NewGuestChatService(repo repository.Repository, sender tunnel.Sender, welcome string) *GuestChatService {
	if strings.TrimSpace(welcome) == "" {
		welcome = DefaultWelcomeMessage
	}
	return &GuestChatService{
		repo:     repo,
		sender:   sender,
		welcome:  welcome,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
}

// turn is one user message and the bot message answering it.
type turn struct {
	sessionID    string
	conversation *model.GuestConversation
	user         model.Message
	bot          model.Message
}

// StartSession begins a new guest session. The previous in-progress
// conversation stays in history but is no longer current.
func (s *GuestChatService) StartSession(ctx context.Context) (*model.Session, error) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	return s.startSessionLocked(ctx), nil
}

func (s *GuestChatService) startSessionLocked(ctx context.Context) *model.Session {
	sessionID := uuid.NewString()
	if err := s.repo.SetSessionID(ctx, sessionID); err != nil {
		slog.Warn("Failed to store guest session id", "session_id", sessionID, "error", err)
	}
	if err := s.repo.SetCurrent(ctx, nil); err != nil {
		slog.Warn("Failed to clear current conversation", "session_id", sessionID, "error", err)
	}
	slog.Info("Guest session started", "session_id", sessionID)

	return &model.Session{ID: sessionID, Welcome: s.welcomeMessage()}
}

// CurrentSession returns the active session, starting one if none exists.
func (s *GuestChatService) CurrentSession(ctx context.Context) (*model.Session, error) {
	s.sessionMu.Lock()
	sessionID, err := s.repo.GetSessionID(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Warn("Failed to read guest session id", "error", err)
		}
		session := s.startSessionLocked(ctx)
		s.sessionMu.Unlock()
		return session, nil
	}
	s.sessionMu.Unlock()

	return &model.Session{
		ID:           sessionID,
		Welcome:      s.welcomeMessage(),
		Conversation: s.currentConversation(ctx),
	}, nil
}

// HandleMessage sends a message and reports the reply on streamChan: one
// start event, chunk events as text arrives, then done or error. The channel
// is closed on return.
func (s *GuestChatService) HandleMessage(ctx context.Context, req *SendMessageRequest, streamChan chan<- model.StreamResponse) {
	defer close(streamChan)

	t, err := s.beginTurn(ctx, req.Message)
	if err != nil {
		emit(ctx, streamChan, model.StreamResponse{Event: model.EventError, Done: true, Error: err.Error()})
		return
	}
	defer s.release(t.sessionID)

	emit(ctx, streamChan, model.StreamResponse{
		Event:     model.EventStart,
		MessageID: t.bot.ID,
		Reply:     t.reply(nil),
	})

	res, sendErr := s.sender.Send(ctx, &tunnel.Request{Message: t.user.Text, TargetMessageID: t.bot.ID}, func(text string) {
		emit(ctx, streamChan, model.StreamResponse{Event: model.EventChunk, MessageID: t.bot.ID, Content: text})
	})
	reply := s.finishTurn(ctx, t, res, sendErr)

	if sendErr != nil {
		emit(ctx, streamChan, model.StreamResponse{
			Event:     model.EventError,
			MessageID: t.bot.ID,
			Done:      true,
			Reply:     reply,
			Error:     reply.BotMessage.Text,
		})
		return
	}
	emit(ctx, streamChan, model.StreamResponse{Event: model.EventDone, MessageID: t.bot.ID, Done: true, Reply: reply})
}

// SendMessage is the one-shot variant of HandleMessage. A transport failure
// is not an error here: the reply then carries a system-error message.
func (s *GuestChatService) SendMessage(ctx context.Context, req *SendMessageRequest) (*model.Reply, error) {
	t, err := s.beginTurn(ctx, req.Message)
	if err != nil {
		return nil, err
	}
	defer s.release(t.sessionID)

	res, sendErr := s.sender.Send(ctx, &tunnel.Request{Message: t.user.Text, TargetMessageID: t.bot.ID}, nil)
	return s.finishTurn(ctx, t, res, sendErr), nil
}

// ListConversations returns the saved history, most recent first. Storage
// failures yield an empty history.
func (s *GuestChatService) ListConversations(ctx context.Context) ([]*model.GuestConversation, error) {
	conversations, err := s.repo.ListConversations(ctx)
	if err != nil {
		slog.Warn("Failed to load conversation history", "error", err)
		return []*model.GuestConversation{}, nil
	}
	return conversations, nil
}

func (s *GuestChatService) GetConversation(ctx context.Context, id string) (*model.GuestConversation, error) {
	conv, err := s.repo.GetConversation(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Warn("Failed to load conversation", "conversation_id", id, "error", err)
		}
		return nil, fmt.Errorf("conversation %s: %w", id, app_errors.ErrNotFound)
	}
	return conv, nil
}

// ClearHistory removes every saved conversation at once.
func (s *GuestChatService) ClearHistory(ctx context.Context) error {
	if err := s.repo.ClearConversations(ctx); err != nil {
		slog.Error("Failed to clear conversation history", "error", err)
		return fmt.Errorf("could not clear history: %w", app_errors.ErrInternal)
	}
	slog.Info("Conversation history cleared")
	return nil
}

// beginTurn validates the message, claims the session and records the user
// message. The session stays claimed until release.
func (s *GuestChatService) beginTurn(ctx context.Context, raw string) (*turn, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fmt.Errorf("message cannot be empty: %w", app_errors.ErrValidation)
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return nil, fmt.Errorf("message exceeds %d characters: %w", MaxMessageLength, app_errors.ErrValidation)
	}

	sessionID := s.sessionID(ctx)
	if !s.acquire(sessionID) {
		return nil, fmt.Errorf("a reply is still streaming for this session: %w", app_errors.ErrConflict)
	}

	now := s.now()
	conv := s.currentConversation(ctx)
	if conv == nil {
		conv = &model.GuestConversation{
			ID:        uuid.NewString(),
			Title:     Title(text),
			CreatedAt: now,
		}
	}

	t := &turn{
		sessionID:    sessionID,
		conversation: conv,
		user:         model.Message{ID: uuid.NewString(), Text: text, Role: model.RoleUser, Timestamp: now},
		bot:          model.Message{ID: uuid.NewString(), Role: model.RoleBot, Timestamp: now, IsStreaming: true},
	}

	conv.Messages = append(conv.Messages, t.user)
	conv.UpdatedAt = now
	s.persist(ctx, t)
	return t, nil
}

// finishTurn settles the bot message. Only a genuine remote reply is written
// to history; synthetic, opaque and failed replies are returned but not kept.
func (s *GuestChatService) finishTurn(ctx context.Context, t *turn, res *tunnel.Result, sendErr error) *model.Reply {
	t.bot.IsStreaming = false
	t.bot.Timestamp = s.now()

	if sendErr != nil {
		t.bot.Role = model.RoleSystemError
		t.bot.Text = failureMessage(sendErr)
		slog.Warn("Guest message failed", "conversation_id", t.conversation.ID, "message_id", t.bot.ID, "error", sendErr)
		return t.reply(nil)
	}

	t.bot.Text = res.ResponseText
	if res.Genuine() {
		t.conversation.Messages = append(t.conversation.Messages, t.bot)
		t.conversation.UpdatedAt = t.bot.Timestamp
		s.persist(ctx, t)
	} else {
		slog.Info("Reply not saved to history", "conversation_id", t.conversation.ID, "strategy", res.Strategy,
			"synthetic", res.Synthetic, "opaque", res.Opaque)
	}
	return t.reply(res)
}

// persist writes the turn's conversation to history. It stays the current
// conversation only while the turn's session is still the active one. It runs
// even when the client has gone away.
func (s *GuestChatService) persist(ctx context.Context, t *turn) {
	ctx = context.WithoutCancel(ctx)
	conv := t.conversation
	if err := s.repo.SaveConversation(ctx, conv); err != nil {
		slog.Warn("Failed to save conversation", "conversation_id", conv.ID, "error", err)
	}

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	active, err := s.repo.GetSessionID(ctx)
	if err != nil {
		slog.Warn("Failed to read guest session id, current conversation not updated", "conversation_id", conv.ID, "error", err)
		return
	}
	if active != t.sessionID {
		slog.Info("Session changed during the turn, conversation kept in history only",
			"conversation_id", conv.ID, "session_id", t.sessionID, "active_session_id", active)
		return
	}
	if err := s.repo.SetCurrent(ctx, conv); err != nil {
		slog.Warn("Failed to store current conversation", "conversation_id", conv.ID, "error", err)
	}
}

func (s *GuestChatService) currentConversation(ctx context.Context) *model.GuestConversation {
	conv, err := s.repo.GetCurrent(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Warn("Failed to read current conversation", "error", err)
		}
		return nil
	}
	return conv
}

// sessionID returns the active session id, creating the session on first use.
// Concurrent first sends end up in the same session.
func (s *GuestChatService) sessionID(ctx context.Context) string {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	sessionID, err := s.repo.GetSessionID(ctx)
	if err == nil {
		return sessionID
	}
	if !errors.Is(err, repository.ErrNotFound) {
		slog.Warn("Failed to read guest session id", "error", err)
	}
	return s.startSessionLocked(ctx).ID
}

func (s *GuestChatService) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *GuestChatService) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

func (s *GuestChatService) welcomeMessage() model.Message {
	return model.Message{ID: uuid.NewString(), Text: s.welcome, Role: model.RoleBot, Timestamp: s.now()}
}

func (t *turn) reply(res *tunnel.Result) *model.Reply {
	reply := &model.Reply{
		ConversationID: t.conversation.ID,
		UserMessage:    t.user,
		BotMessage:     t.bot,
	}
	if res != nil {
		reply.Strategy = res.Strategy
		reply.Synthetic = res.Synthetic
		reply.Opaque = res.Opaque
	}
	return reply
}

// Title derives a conversation title from its first user message.
func Title(firstMessage string) string {
	text := strings.TrimSpace(firstMessage)
	if utf8.RuneCountInString(text) <= titleLength {
		return text
	}
	return string([]rune(text)[:titleLength]) + "..."
}

func failureMessage(err error) string {
	var terr *tunnel.TransportError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return cancelledFailureMessage
	case errors.As(err, &terr):
		return terr.UserMessage()
	default:
		return genericFailureMessage
	}
}

// emit delivers ev unless the consumer has gone away.
func emit(ctx context.Context, ch chan<- model.StreamResponse, ev model.StreamResponse) {
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}
