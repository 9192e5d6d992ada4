package sqlite

import (
	"database/sql"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    chat_id INTEGER NOT NULL
);
`

// Migrate создаёт таблицы локального кэша.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createKVTable); err != nil {
		return err
	}
	if _, err := db.Exec(createUsersTable); err != nil {
		return err
	}
	return nil
}

// MigrateKV создаёт только таблицу kv: её же использует удалённый уровень.
func MigrateKV(db *sql.DB) error {
	_, err := db.Exec(createKVTable)
	return err
}
