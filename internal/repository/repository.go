package repository

import (
	"context"

	"guestchat/backend/internal/model"
)

// DefaultHistoryLimit is the number of conversations kept when no limit is configured.
const DefaultHistoryLimit = 10

// Keys of the guest_state table / bucket.
const (
	keyCurrentConversation = "current_conversation"
	keyGuestSessionID      = "guest_session_id"
)

// Repository is the guest conversation store. It keeps a capped,
// most-recently-saved-first history, the conversation currently in progress
// and the active guest session id.
type Repository interface {
	// SaveConversation inserts or replaces conv, moves it to the front of the
	// history and evicts whatever falls beyond the limit.
	SaveConversation(ctx context.Context, conv *model.GuestConversation) error
	ListConversations(ctx context.Context) ([]*model.GuestConversation, error)
	GetConversation(ctx context.Context, id string) (*model.GuestConversation, error)
	// ClearConversations removes the whole history and the current conversation.
	ClearConversations(ctx context.Context) error

	GetCurrent(ctx context.Context) (*model.GuestConversation, error)
	// SetCurrent replaces the current conversation; nil clears it.
	SetCurrent(ctx context.Context, conv *model.GuestConversation) error

	GetSessionID(ctx context.Context) (string, error)
	SetSessionID(ctx context.Context, id string) error
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return limit
}
