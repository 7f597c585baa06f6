// Package cli is the terminal front end of the guest chat service.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	app_errors "guestchat/backend/internal/errors"
	"guestchat/backend/internal/interfaces"
	"guestchat/backend/internal/model"
	"guestchat/backend/internal/service"
)

// REPL reads guest messages line by line and prints streamed replies.
type REPL struct {
	service interfaces.ChatService
	in      io.Reader
	out     io.Writer
}

func NewREPL(svc interfaces.ChatService, in io.Reader, out io.Writer) *REPL {
	return &REPL{service: svc, in: in, out: out}
}

// Run blocks until /quit, end of input or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	session, err := r.service.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("could not load session: %w", err)
	}

	fmt.Fprintln(r.out, "=== Guest Chat ===")
	fmt.Fprintf(r.out, "Session: %s\n", session.ID)
	fmt.Fprintln(r.out, "Type /help for commands, /quit to exit")
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Bot: %s\n\n", session.Welcome.Text)
	if session.Conversation != nil {
		r.printMessages(session.Conversation.Messages)
	}

	scanner := bufio.NewScanner(r.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Fprint(r.out, "You: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := r.handleCommand(ctx, line); quit {
				break
			}
			continue
		}
		r.send(ctx, line)
		if ctx.Err() != nil {
			break
		}
	}

	fmt.Fprintln(r.out, "Goodbye!")
	return scanner.Err()
}

func (r *REPL) handleCommand(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true

	case "/new":
		session, err := r.service.StartSession(ctx)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return false
		}
		fmt.Fprintln(r.out, "Started new session:", session.ID)
		fmt.Fprintf(r.out, "Bot: %s\n\n", session.Welcome.Text)

	case "/history":
		convs, err := r.service.ListConversations(ctx)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return false
		}
		if len(convs) == 0 {
			fmt.Fprintln(r.out, "No saved conversations.")
			return false
		}
		fmt.Fprintln(r.out, "\nRecent conversations:")
		for i, conv := range convs {
			fmt.Fprintf(r.out, "%d. %s  %s (%d messages)\n", i+1, conv.ID, conv.Title, len(conv.Messages))
		}
		fmt.Fprintln(r.out)

	case "/show":
		if len(fields) < 2 {
			fmt.Fprintln(r.out, "Usage: /show <conversation-id>")
			return false
		}
		conv, err := r.service.GetConversation(ctx, fields[1])
		if errors.Is(err, app_errors.ErrNotFound) {
			fmt.Fprintln(r.out, "Conversation not found:", fields[1])
			return false
		}
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return false
		}
		fmt.Fprintf(r.out, "\n--- %s ---\n", conv.Title)
		r.printMessages(conv.Messages)

	case "/clear":
		if err := r.service.ClearHistory(ctx); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return false
		}
		fmt.Fprintln(r.out, "History cleared.")

	case "/help":
		fmt.Fprintln(r.out, "Available commands:")
		fmt.Fprintln(r.out, "  /new          - Start a new guest session")
		fmt.Fprintln(r.out, "  /history      - List saved conversations")
		fmt.Fprintln(r.out, "  /show <id>    - Print a saved conversation")
		fmt.Fprintln(r.out, "  /clear        - Delete all saved conversations")
		fmt.Fprintln(r.out, "  /quit, /exit  - Exit")

	default:
		fmt.Fprintf(r.out, "Unknown command: %s (type /help)\n", fields[0])
	}
	return false
}

// send streams one reply, printing chunks as they arrive.
func (r *REPL) send(ctx context.Context, text string) {
	streamChan := make(chan model.StreamResponse)
	go r.service.HandleMessage(ctx, &service.SendMessageRequest{Message: text}, streamChan)

	for event := range streamChan {
		switch event.Event {
		case model.EventStart:
			fmt.Fprint(r.out, "Bot: ")
		case model.EventChunk:
			fmt.Fprint(r.out, event.Content)
		case model.EventDone:
			fmt.Fprintln(r.out)
			if event.Reply != nil && (event.Reply.Synthetic || event.Reply.Opaque) {
				fmt.Fprintln(r.out, "(this reply was not saved to history)")
			}
			fmt.Fprintln(r.out)
		case model.EventError:
			fmt.Fprintf(r.out, "\nError: %s\n\n", event.Error)
		}
	}
}

func (r *REPL) printMessages(messages []model.Message) {
	for _, msg := range messages {
		switch msg.Role {
		case model.RoleUser:
			fmt.Fprintf(r.out, "You: %s\n", msg.Text)
		case model.RoleSystemError:
			fmt.Fprintf(r.out, "Error: %s\n", msg.Text)
		default:
			fmt.Fprintf(r.out, "Bot: %s\n", msg.Text)
		}
	}
	fmt.Fprintln(r.out)
}
