package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	bolt "go.etcd.io/bbolt"

	"guestchat/backend/internal/model"
)

var (
	conversationsBucket = []byte("conversations")
	guestStateBucket    = []byte("guest_state")
)

// boltRecord orders conversations by the bucket sequence at save time.
type boltRecord struct {
	Seq          uint64                   `json:"seq"`
	Conversation *model.GuestConversation `json:"conversation"`
}

type boltRepository struct {
	db    *bolt.DB
	limit int
}

// NewBoltRepository creates the buckets it needs on first use.
func NewBoltRepository(db *bolt.DB, limit int) (Repository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{conversationsBucket, guestStateBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &boltRepository{db: db, limit: normalizeLimit(limit)}, nil
}

func (r *boltRepository) SaveConversation(_ context.Context, conv *model.GuestConversation) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(conversationsBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		enc, err := json.Marshal(boltRecord{Seq: seq, Conversation: conv})
		if err != nil {
			return err
		}
		if err := b.Put([]byte(conv.ID), enc); err != nil {
			return err
		}

		records := loadRecords(b)
		for _, rec := range records[min(r.limit, len(records)):] {
			if err := b.Delete([]byte(rec.Conversation.ID)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *boltRepository) ListConversations(_ context.Context) ([]*model.GuestConversation, error) {
	var out []*model.GuestConversation
	err := r.db.View(func(tx *bolt.Tx) error {
		records := loadRecords(tx.Bucket(conversationsBucket))
		out = make([]*model.GuestConversation, 0, min(r.limit, len(records)))
		for _, rec := range records[:min(r.limit, len(records))] {
			out = append(out, rec.Conversation)
		}
		return nil
	})
	return out, err
}

func (r *boltRepository) GetConversation(_ context.Context, id string) (*model.GuestConversation, error) {
	var rec boltRecord
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(conversationsBucket).Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		return nil, err
	}
	return rec.Conversation, nil
}

func (r *boltRepository) ClearConversations(_ context.Context) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(conversationsBucket); err != nil {
			return err
		}
		if _, err := tx.CreateBucket(conversationsBucket); err != nil {
			return err
		}
		return tx.Bucket(guestStateBucket).Delete([]byte(keyCurrentConversation))
	})
}

func (r *boltRepository) GetCurrent(_ context.Context) (*model.GuestConversation, error) {
	value, err := r.getState(keyCurrentConversation)
	if err != nil {
		return nil, err
	}
	var conv model.GuestConversation
	if err := json.Unmarshal(value, &conv); err != nil {
		return nil, fmt.Errorf("could not unmarshal current conversation: %w", err)
	}
	return &conv, nil
}

func (r *boltRepository) SetCurrent(_ context.Context, conv *model.GuestConversation) error {
	if conv == nil {
		return r.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(guestStateBucket).Delete([]byte(keyCurrentConversation))
		})
	}
	enc, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("could not marshal current conversation: %w", err)
	}
	return r.setState(keyCurrentConversation, enc)
}

func (r *boltRepository) GetSessionID(_ context.Context) (string, error) {
	value, err := r.getState(keyGuestSessionID)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (r *boltRepository) SetSessionID(_ context.Context, id string) error {
	return r.setState(keyGuestSessionID, []byte(id))
}

func (r *boltRepository) getState(key string) ([]byte, error) {
	var out []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(guestStateBucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// Values are only valid inside the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

func (r *boltRepository) setState(key string, value []byte) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(guestStateBucket).Put([]byte(key), value)
	})
}

// loadRecords returns the bucket's records, most recently saved first.
func loadRecords(b *bolt.Bucket) []boltRecord {
	var records []boltRecord
	_ = b.ForEach(func(k, v []byte) error {
		var rec boltRecord
		if err := json.Unmarshal(v, &rec); err != nil || rec.Conversation == nil {
			slog.Warn("Skipping malformed conversation record", "key", string(k), "error", err)
			return nil
		}
		records = append(records, rec)
		return nil
	})
	slices.SortFunc(records, func(a, b boltRecord) int {
		switch {
		case a.Seq > b.Seq:
			return -1
		case a.Seq < b.Seq:
			return 1
		default:
			return 0
		}
	})
	return records
}
