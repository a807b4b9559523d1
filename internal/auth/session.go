// Package auth описывает сессию пользователя, выпуск и проверку токенов и таблицу прав по ролям.
package auth

import (
	"context"
	"errors"

	"scroom/internal/model"
)

var (
	// ErrUnauthenticated возвращается, если у запроса нет действительной сессии.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNoTeam возвращается, если пользователь ещё не состоит в команде.
	ErrNoTeam = errors.New("onboarding incomplete")

	// ErrForbidden возвращается, если роль не допускает операцию.
	ErrForbidden = errors.New("operation not permitted for role")
)

// Session описывает аутентифицированного пользователя текущего запроса.
// Значение собирается заново на каждый запрос и явно передаётся в сервисы.
type Session struct {
	UserID string
	Name   string
	TeamID string
	Role   model.Role
}

// HasTeam сообщает, завершён ли онбординг.
func (s Session) HasTeam() bool {
	return s.TeamID != ""
}

// SessionFromUser собирает сессию по записи пользователя.
func SessionFromUser(u model.User) Session {
	s := Session{
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Role,
	}
	if u.TeamID != nil {
		s.TeamID = *u.TeamID
	}
	return s
}

type sessionKey struct{}

// WithSession кладёт сессию в контекст запроса.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext достаёт сессию из контекста запроса.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
