package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "guestchat.db")

	db, err := InitDB(path)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"conversations", "guest_state"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

// TestInitDB_Idempotent reopens the same file; the second run must treat the
// already-applied migration as a no-op.
func TestInitDB_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guestchat.db")

	first, err := InitDB(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := InitDB(path)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestOpenBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "guestchat.bolt")

	db, err := OpenBolt(path)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())
	assert.NoError(t, db.Close())
}
