package service

import (
	"database/sql"
	"errors"
	"fmt"

	"workshift-bot/internal/domain"
)

type UserService struct {
	Repo domain.UserRepo
}

func NewUserService(repo domain.UserRepo) *UserService {
	return &UserService{Repo: repo}
}

// EnsureUser регистрирует пользователя при первом /start и обновляет имя и чат при повторном.
func (s *UserService) EnsureUser(u domain.User) (created bool, err error) {
	existing, err := s.Repo.GetUserByID(u.ID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = true
	case err != nil:
		return false, fmt.Errorf("get user %d: %w", u.ID, err)
	case existing == u:
		return false, nil
	}
	if err := s.Repo.CreateOrUpdateUser(u); err != nil {
		return false, fmt.Errorf("save user %d: %w", u.ID, err)
	}
	return created, nil
}
