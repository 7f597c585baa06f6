package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestchat/backend/internal/model"
)

// These tests use sqlmock to drive the failure paths a real SQLite file
// cannot easily produce.

func setupMockRepo(t *testing.T) (*sqliteRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &sqliteRepository{db: db, limit: DefaultHistoryLimit}, mock
}

func TestSQLiteRepository_SaveConversation_RollsBackOnError(t *testing.T) {
	repo, mock := setupMockRepo(t)
	dbErr := errors.New("disk I/O error")
	conv := &model.GuestConversation{ID: "conv-1", Title: "Hi", CreatedAt: time.Now(), UpdatedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(saved_seq), 0) + 1 FROM conversations")).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(4))
	mock.ExpectExec("INSERT INTO conversations").
		WithArgs("conv-1", "Hi", "null", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(4)).
		WillReturnError(dbErr)
	mock.ExpectRollback()

	err := repo.SaveConversation(context.Background(), conv)

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_SaveConversation_EvictsInSameTransaction(t *testing.T) {
	repo, mock := setupMockRepo(t)
	conv := &model.GuestConversation{ID: "conv-1", Messages: []model.Message{}}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(1))
	mock.ExpectExec("INSERT INTO conversations").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM conversations").WithArgs(DefaultHistoryLimit).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveConversation(context.Background(), conv))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_GetConversation_NotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT id, title, messages, created_at, updated_at FROM conversations WHERE id = ?").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetConversation(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_ListConversations_SkipsMalformedRows(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "title", "messages", "created_at", "updated_at"}).
		AddRow("good", "Good", `[{"id":"m1","text":"hi","role":"user"}]`, now, now).
		AddRow("bad", "Bad", `{not json`, now, now)
	mock.ExpectQuery("SELECT id, title, messages, created_at, updated_at").
		WithArgs(DefaultHistoryLimit).
		WillReturnRows(rows)

	list, err := repo.ListConversations(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "good", list[0].ID)
	assert.Equal(t, "hi", list[0].Messages[0].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_ClearConversations_Error(t *testing.T) {
	repo, mock := setupMockRepo(t)
	dbErr := errors.New("database is locked")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM conversations").WillReturnError(dbErr)
	mock.ExpectRollback()

	err := repo.ClearConversations(context.Background())

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultHistoryLimit, normalizeLimit(0))
	assert.Equal(t, DefaultHistoryLimit, normalizeLimit(-3))
	assert.Equal(t, 25, normalizeLimit(25))
}
