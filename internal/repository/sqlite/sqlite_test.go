package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshift-bot/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestKVRepo(t *testing.T) {
	repo := NewKVRepo(openTestDB(t))
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := repo.Get(ctx, "shifts_v2_1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then overwrite", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "shifts_v2_1", `{"a":"1"}`))
		require.NoError(t, repo.Set(ctx, "shifts_v2_1", `{"a":"2"}`))

		v, ok, err := repo.Get(ctx, "shifts_v2_1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"a":"2"}`, v)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "shifts_v2_1"))
		_, ok, err := repo.Get(ctx, "shifts_v2_1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserRepo(t *testing.T) {
	repo := NewSqliteUserRepo(openTestDB(t))

	require.NoError(t, repo.CreateOrUpdateUser(domain.User{ID: 42, Name: "Olena", ChatID: 100}))
	require.NoError(t, repo.CreateOrUpdateUser(domain.User{ID: 42, Name: "Olena K", ChatID: 101}))
	require.NoError(t, repo.CreateOrUpdateUser(domain.User{ID: 7, Name: "Ivan", ChatID: 200}))

	u, err := repo.GetUserByID(42)
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 42, Name: "Olena K", ChatID: 101}, u)

	u, err = repo.GetUserByID(7)
	require.NoError(t, err)
	assert.Equal(t, "Ivan", u.Name)

	_, err = repo.GetUserByID(999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
