package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"guestchat/backend/internal/model"
)

type sqliteRepository struct {
	db    *sql.DB
	limit int
}

// NewSQLiteRepository expects a database already migrated by database.InitDB.
func NewSQLiteRepository(db *sql.DB, limit int) Repository {
	return &sqliteRepository{db: db, limit: normalizeLimit(limit)}
}

// SaveConversation runs the upsert and the eviction in one transaction so the
// history never holds more than the limit.
func (r *sqliteRepository) SaveConversation(ctx context.Context, conv *model.GuestConversation) error {
	messages, err := json.Marshal(conv.Messages)
	if err != nil {
		return fmt.Errorf("could not marshal messages: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(saved_seq), 0) + 1 FROM conversations").Scan(&seq); err != nil {
		return fmt.Errorf("could not read save sequence: %w", err)
	}

	upsertQuery := `
		INSERT INTO conversations (id, title, messages, created_at, updated_at, saved_seq)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			messages = excluded.messages,
			updated_at = excluded.updated_at,
			saved_seq = excluded.saved_seq
	`
	_, err = tx.ExecContext(ctx, upsertQuery, conv.ID, conv.Title, string(messages), conv.CreatedAt, conv.UpdatedAt, seq)
	if err != nil {
		return fmt.Errorf("could not upsert conversation: %w", err)
	}

	evictQuery := `
		DELETE FROM conversations
		WHERE id NOT IN (SELECT id FROM conversations ORDER BY saved_seq DESC LIMIT ?)
	`
	if _, err := tx.ExecContext(ctx, evictQuery, r.limit); err != nil {
		return fmt.Errorf("could not evict old conversations: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) ListConversations(ctx context.Context) ([]*model.GuestConversation, error) {
	query := `
		SELECT id, title, messages, created_at, updated_at
		FROM conversations
		ORDER BY saved_seq DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, r.limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conversations := make([]*model.GuestConversation, 0, r.limit)
	for rows.Next() {
		var conv model.GuestConversation
		var messages string
		if err := rows.Scan(&conv.ID, &conv.Title, &messages, &conv.CreatedAt, &conv.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(messages), &conv.Messages); err != nil {
			slog.Warn("Skipping conversation with malformed messages", "conversation_id", conv.ID, "error", err)
			continue
		}
		conversations = append(conversations, &conv)
	}
	return conversations, rows.Err()
}

func (r *sqliteRepository) GetConversation(ctx context.Context, id string) (*model.GuestConversation, error) {
	query := "SELECT id, title, messages, created_at, updated_at FROM conversations WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, id)

	var conv model.GuestConversation
	var messages string
	err := row.Scan(&conv.ID, &conv.Title, &messages, &conv.CreatedAt, &conv.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(messages), &conv.Messages); err != nil {
		return nil, fmt.Errorf("could not unmarshal messages of conversation %s: %w", id, err)
	}
	return &conv, nil
}

func (r *sqliteRepository) ClearConversations(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM conversations"); err != nil {
		return fmt.Errorf("could not delete conversations: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM guest_state WHERE key = ?", keyCurrentConversation); err != nil {
		return fmt.Errorf("could not delete current conversation: %w", err)
	}
	return tx.Commit()
}

func (r *sqliteRepository) GetCurrent(ctx context.Context) (*model.GuestConversation, error) {
	value, err := r.getState(ctx, keyCurrentConversation)
	if err != nil {
		return nil, err
	}
	var conv model.GuestConversation
	if err := json.Unmarshal([]byte(value), &conv); err != nil {
		return nil, fmt.Errorf("could not unmarshal current conversation: %w", err)
	}
	return &conv, nil
}

func (r *sqliteRepository) SetCurrent(ctx context.Context, conv *model.GuestConversation) error {
	if conv == nil {
		_, err := r.db.ExecContext(ctx, "DELETE FROM guest_state WHERE key = ?", keyCurrentConversation)
		return err
	}
	value, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("could not marshal current conversation: %w", err)
	}
	return r.setState(ctx, keyCurrentConversation, string(value))
}

func (r *sqliteRepository) GetSessionID(ctx context.Context) (string, error) {
	return r.getState(ctx, keyGuestSessionID)
}

func (r *sqliteRepository) SetSessionID(ctx context.Context, id string) error {
	return r.setState(ctx, keyGuestSessionID, id)
}

func (r *sqliteRepository) getState(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM guest_state WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *sqliteRepository) setState(ctx context.Context, key, value string) error {
	query := "INSERT INTO guest_state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"
	_, err := r.db.ExecContext(ctx, query, key, value)
	return err
}
