package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"guestchat/backend/internal/cli"
	app_errors "guestchat/backend/internal/errors"
	"guestchat/backend/internal/interfaces/mocks"
	"guestchat/backend/internal/model"
	"guestchat/backend/internal/service"
)

func runREPL(t *testing.T, mockChatSvc *mocks.MockChatService, input string) string {
	var out bytes.Buffer
	repl := cli.NewREPL(mockChatSvc, strings.NewReader(input), &out)
	require.NoError(t, repl.Run(context.Background()))
	return out.String()
}

func expectSession(mockChatSvc *mocks.MockChatService) {
	mockChatSvc.EXPECT().CurrentSession(mock.Anything).Return(&model.Session{
		ID:      "session-1",
		Welcome: model.Message{Text: "Welcome to the bank!", Role: model.RoleBot},
	}, nil).Once()
}

func TestREPL_StreamsReply(t *testing.T) {
	// ARRANGE
	mockChatSvc := mocks.NewMockChatService(t)
	expectSession(mockChatSvc)
	mockChatSvc.EXPECT().
		HandleMessage(mock.Anything, mock.MatchedBy(func(req *service.SendMessageRequest) bool { return req.Message == "Card limit?" }), mock.Anything).
		Run(func(_ context.Context, _ *service.SendMessageRequest, ch chan<- model.StreamResponse) {
			ch <- model.StreamResponse{Event: model.EventStart, MessageID: "b1"}
			ch <- model.StreamResponse{Event: model.EventChunk, Content: "Your limit"}
			ch <- model.StreamResponse{Event: model.EventChunk, Content: " is shown in the app."}
			ch <- model.StreamResponse{Event: model.EventDone, Done: true, Reply: &model.Reply{}}
			close(ch)
		}).Once()

	// ACT
	out := runREPL(t, mockChatSvc, "Card limit?\n/quit\n")

	// ASSERT
	assert.Contains(t, out, "Session: session-1")
	assert.Contains(t, out, "Bot: Welcome to the bank!")
	assert.Contains(t, out, "Bot: Your limit is shown in the app.\n")
	assert.NotContains(t, out, "not saved")
	assert.Contains(t, out, "Goodbye!")
}

func TestREPL_SyntheticReplyIsFlagged(t *testing.T) {
	mockChatSvc := mocks.NewMockChatService(t)
	expectSession(mockChatSvc)
	mockChatSvc.EXPECT().HandleMessage(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *service.SendMessageRequest, ch chan<- model.StreamResponse) {
			ch <- model.StreamResponse{Event: model.EventStart}
			ch <- model.StreamResponse{Event: model.EventChunk, Content: "Sorry"}
			ch <- model.StreamResponse{Event: model.EventDone, Done: true, Reply: &model.Reply{Synthetic: true}}
			close(ch)
		}).Once()

	out := runREPL(t, mockChatSvc, "hello\n")

	assert.Contains(t, out, "(this reply was not saved to history)")
}

func TestREPL_Commands(t *testing.T) {
	mockChatSvc := mocks.NewMockChatService(t)
	expectSession(mockChatSvc)
	mockChatSvc.EXPECT().ListConversations(mock.Anything).Return([]*model.GuestConversation{
		{ID: "conv-1", Title: "Opening hours", Messages: []model.Message{{Text: "a"}, {Text: "b"}}},
	}, nil).Once()
	mockChatSvc.EXPECT().GetConversation(mock.Anything, "conv-1").Return(&model.GuestConversation{
		ID:    "conv-1",
		Title: "Opening hours",
		Messages: []model.Message{
			{Text: "When do you open?", Role: model.RoleUser},
			{Text: "At 8:00.", Role: model.RoleBot},
		},
	}, nil).Once()
	mockChatSvc.EXPECT().GetConversation(mock.Anything, "missing").Return(nil, app_errors.ErrNotFound).Once()
	mockChatSvc.EXPECT().ClearHistory(mock.Anything).Return(nil).Once()
	mockChatSvc.EXPECT().StartSession(mock.Anything).Return(&model.Session{
		ID:      "session-2",
		Welcome: model.Message{Text: "Welcome to the bank!"},
	}, nil).Once()

	out := runREPL(t, mockChatSvc, "/history\n/show conv-1\n/show missing\n/show\n/clear\n/new\n/bogus\n/exit\n")

	assert.Contains(t, out, "1. conv-1  Opening hours (2 messages)")
	assert.Contains(t, out, "You: When do you open?\nBot: At 8:00.")
	assert.Contains(t, out, "Conversation not found: missing")
	assert.Contains(t, out, "Usage: /show <conversation-id>")
	assert.Contains(t, out, "History cleared.")
	assert.Contains(t, out, "Started new session: session-2")
	assert.Contains(t, out, "Unknown command: /bogus")
}
