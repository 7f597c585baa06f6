package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestchat/backend/internal/database"
	"guestchat/backend/internal/model"
	"guestchat/backend/internal/repository"
)

type repoFactory func(t *testing.T, limit int) repository.Repository

func newSQLiteRepo(t *testing.T, limit int) repository.Repository {
	db, err := database.InitDB(filepath.Join(t.TempDir(), "guestchat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSQLiteRepository(db, limit)
}

func newBoltRepo(t *testing.T, limit int) repository.Repository {
	db, err := database.OpenBolt(filepath.Join(t.TempDir(), "guestchat.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo, err := repository.NewBoltRepository(db, limit)
	require.NoError(t, err)
	return repo
}

func conversation(i int) *model.GuestConversation {
	ts := time.Date(2024, 5, 1, 10, i, 0, 0, time.UTC)
	return &model.GuestConversation{
		ID:    fmt.Sprintf("conv-%02d", i),
		Title: fmt.Sprintf("Question %d", i),
		Messages: []model.Message{
			{ID: fmt.Sprintf("u-%d", i), Text: "How do I open an account?", Role: model.RoleUser, Timestamp: ts},
			{ID: fmt.Sprintf("b-%d", i), Text: "Xin chào!\nVisit any branch.", Role: model.RoleBot, Timestamp: ts.Add(time.Second)},
		},
		CreatedAt: ts,
		UpdatedAt: ts.Add(time.Second),
	}
}

func ids(convs []*model.GuestConversation) []string {
	out := make([]string, len(convs))
	for i, c := range convs {
		out[i] = c.ID
	}
	return out
}

// TestRepositories runs the same behavioural checks against every store driver.
func TestRepositories(t *testing.T) {
	drivers := map[string]repoFactory{
		"sqlite": newSQLiteRepo,
		"bolt":   newBoltRepo,
	}
	for name, factory := range drivers {
		t.Run(name, func(t *testing.T) {
			testRoundTrip(t, factory)
			testHistoryCap(t, factory)
			testResaveMovesToFront(t, factory)
			testClear(t, factory)
			testGuestState(t, factory)
		})
	}
}

func testRoundTrip(t *testing.T, newRepo repoFactory) {
	t.Run("round trip", func(t *testing.T) {
		repo := newRepo(t, 10)
		ctx := context.Background()
		conv := conversation(1)

		require.NoError(t, repo.SaveConversation(ctx, conv))

		got, err := repo.GetConversation(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, conv.Title, got.Title)
		assert.Equal(t, conv.Messages[1].Text, got.Messages[1].Text)
		assert.Equal(t, model.RoleBot, got.Messages[1].Role)
		assert.True(t, conv.CreatedAt.Equal(got.CreatedAt))

		_, err = repo.GetConversation(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

// testHistoryCap: with N saved in order, the list holds the last min(N, limit)
// most recent first, and the 11th save evicts exactly the oldest.
func testHistoryCap(t *testing.T, newRepo repoFactory) {
	t.Run("history cap", func(t *testing.T) {
		repo := newRepo(t, 10)
		ctx := context.Background()

		for i := 1; i <= 10; i++ {
			require.NoError(t, repo.SaveConversation(ctx, conversation(i)))
		}
		list, err := repo.ListConversations(ctx)
		require.NoError(t, err)
		require.Len(t, list, 10)
		assert.Equal(t, "conv-10", list[0].ID)
		assert.Equal(t, "conv-01", list[9].ID)

		require.NoError(t, repo.SaveConversation(ctx, conversation(11)))

		list, err = repo.ListConversations(ctx)
		require.NoError(t, err)
		require.Len(t, list, 10)
		assert.Equal(t, "conv-11", list[0].ID)
		assert.Equal(t, "conv-02", list[9].ID)

		_, err = repo.GetConversation(ctx, "conv-01")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("custom limit", func(t *testing.T) {
		repo := newRepo(t, 3)
		ctx := context.Background()
		for i := 1; i <= 5; i++ {
			require.NoError(t, repo.SaveConversation(ctx, conversation(i)))
		}
		list, err := repo.ListConversations(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"conv-05", "conv-04", "conv-03"}, ids(list))
	})
}

func testResaveMovesToFront(t *testing.T, newRepo repoFactory) {
	t.Run("resave moves to front", func(t *testing.T) {
		repo := newRepo(t, 10)
		ctx := context.Background()
		for i := 1; i <= 3; i++ {
			require.NoError(t, repo.SaveConversation(ctx, conversation(i)))
		}

		updated := conversation(1)
		updated.Messages = append(updated.Messages, model.Message{ID: "u-extra", Text: "And fees?", Role: model.RoleUser})
		require.NoError(t, repo.SaveConversation(ctx, updated))

		list, err := repo.ListConversations(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"conv-01", "conv-03", "conv-02"}, ids(list))
		assert.Len(t, list[0].Messages, 3)

		// Reads never reorder.
		_, err = repo.GetConversation(ctx, "conv-02")
		require.NoError(t, err)
		list, err = repo.ListConversations(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"conv-01", "conv-03", "conv-02"}, ids(list))
	})
}

func testClear(t *testing.T, newRepo repoFactory) {
	t.Run("clear", func(t *testing.T) {
		repo := newRepo(t, 10)
		ctx := context.Background()
		require.NoError(t, repo.SaveConversation(ctx, conversation(1)))
		require.NoError(t, repo.SaveConversation(ctx, conversation(2)))
		require.NoError(t, repo.SetCurrent(ctx, conversation(2)))
		require.NoError(t, repo.SetSessionID(ctx, "session-1"))

		require.NoError(t, repo.ClearConversations(ctx))

		list, err := repo.ListConversations(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
		_, err = repo.GetCurrent(ctx)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		sessionID, err := repo.GetSessionID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "session-1", sessionID)

		// The store keeps working after a clear.
		require.NoError(t, repo.SaveConversation(ctx, conversation(3)))
		list, err = repo.ListConversations(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"conv-03"}, ids(list))
	})
}

func testGuestState(t *testing.T, newRepo repoFactory) {
	t.Run("guest state", func(t *testing.T) {
		repo := newRepo(t, 10)
		ctx := context.Background()

		_, err := repo.GetSessionID(ctx)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = repo.GetCurrent(ctx)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		require.NoError(t, repo.SetSessionID(ctx, "session-1"))
		require.NoError(t, repo.SetSessionID(ctx, "session-2"))
		sessionID, err := repo.GetSessionID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "session-2", sessionID)

		current := conversation(4)
		require.NoError(t, repo.SetCurrent(ctx, current))
		got, err := repo.GetCurrent(ctx)
		require.NoError(t, err)
		assert.Equal(t, current.ID, got.ID)
		assert.Len(t, got.Messages, 2)

		require.NoError(t, repo.SetCurrent(ctx, nil))
		_, err = repo.GetCurrent(ctx)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
