package service

import (
	"context"
	"errors"

	"scroom/internal/auth"
	"scroom/internal/repository"
)

// SessionService собирает сессию запроса по идентификатору пользователя из токена.
// Роль и команда читаются из хранилища заново на каждый запрос.
type SessionService struct {
	users UserRepository
}

// NewSessionService создаёт сервис сессий.
func NewSessionService(users UserRepository) *SessionService {
	return &SessionService{users: users}
}

// Resolve возвращает сессию пользователя. Удалённый пользователь считается неаутентифицированным.
func (s *SessionService) Resolve(ctx context.Context, userID string) (auth.Session, error) {
	if userID == "" {
		return auth.Session{}, ErrUnauthenticated()
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return auth.Session{}, ErrUnauthenticated()
		}
		return auth.Session{}, errInternal("failed to resolve session", err)
	}
	return auth.SessionFromUser(u), nil
}
