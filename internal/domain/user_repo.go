package domain

type UserRepo interface {
	GetUserByID(id int64) (User, error)
	CreateOrUpdateUser(u User) error
}

type User struct {
	ID     int64
	Name   string
	ChatID int64
}
