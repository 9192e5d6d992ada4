package sqlite

import (
	"database/sql"

	"workshift-bot/internal/domain"
)

type SqliteUserRepo struct {
	db *sql.DB
}

func NewSqliteUserRepo(db *sql.DB) *SqliteUserRepo {
	return &SqliteUserRepo{db: db}
}

func (r *SqliteUserRepo) CreateOrUpdateUser(u domain.User) error {
	res, err := r.db.Exec(`UPDATE users SET name = ?, chat_id = ? WHERE id = ?`, u.Name, u.ChatID, u.ID)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		_, err = r.db.Exec(`INSERT INTO users (id, name, chat_id) VALUES (?, ?, ?)`, u.ID, u.Name, u.ChatID)
		return err
	}
	return nil
}

func (r *SqliteUserRepo) GetUserByID(id int64) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(`SELECT id, name, chat_id FROM users WHERE id = ?`, id).Scan(&u.ID, &u.Name, &u.ChatID)
	return u, err
}
