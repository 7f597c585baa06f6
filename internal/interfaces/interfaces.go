package interfaces

import (
	"context"

	"guestchat/backend/internal/model"
	"guestchat/backend/internal/service"
)

// ChatService is what the API and CLI layers need from the guest chat
// service; handlers depend on it so tests can swap in a mock.
type ChatService interface {
	StartSession(ctx context.Context) (*model.Session, error)
	CurrentSession(ctx context.Context) (*model.Session, error)
	HandleMessage(ctx context.Context, req *service.SendMessageRequest, streamChan chan<- model.StreamResponse)
	SendMessage(ctx context.Context, req *service.SendMessageRequest) (*model.Reply, error)
	ListConversations(ctx context.Context) ([]*model.GuestConversation, error)
	GetConversation(ctx context.Context, id string) (*model.GuestConversation, error)
	ClearHistory(ctx context.Context) error
}

var _ ChatService = (*service.GuestChatService)(nil)
