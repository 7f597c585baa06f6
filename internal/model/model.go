package model

import "time"

// Role identifies who authored a message.
type Role string

const (
	RoleUser        Role = "user"
	RoleBot         Role = "bot"
	RoleSystemError Role = "system-error"
)

// Message is one turn in a guest conversation.
type Message struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Role        Role      `json:"role"`
	Timestamp   time.Time `json:"timestamp"`
	IsStreaming bool      `json:"is_streaming"`
}

// GuestConversation is the persisted record of an unauthenticated chat.
type GuestConversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session describes the active guest session and its in-progress conversation.
type Session struct {
	ID           string             `json:"id"`
	Welcome      Message            `json:"welcome"`
	Conversation *GuestConversation `json:"conversation,omitempty"`
}

// Reply is the outcome of one send: the user turn, the answer turn and how the
// answer was obtained.
type Reply struct {
	ConversationID string  `json:"conversation_id"`
	UserMessage    Message `json:"user_message"`
	BotMessage     Message `json:"bot_message"`
	Strategy       string  `json:"strategy,omitempty"`
	Synthetic      bool    `json:"synthetic"`
	Opaque         bool    `json:"opaque"`
}

// Stream event names.
const (
	EventStart = "start"
	EventChunk = "chunk"
	EventDone  = "done"
	EventError = "error"
)

// StreamResponse is the structure for a single event in a streaming response.
type StreamResponse struct {
	Event     string `json:"event"`
	MessageID string `json:"message_id,omitempty"`
	Content   string `json:"content,omitempty"`
	Done      bool   `json:"done"`
	Reply     *Reply `json:"reply,omitempty"`
	Error     string `json:"error,omitempty"`
}
