package inmemory

import (
	"context"
	"sort"

	"scroom/internal/model"
	"scroom/internal/repository"
)

type UserRepo struct {
	db *Storage
}

func NewUserRepo(db *Storage) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) GetByID(_ context.Context, id string) (model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.Users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepo) ListByTeam(_ context.Context, teamID string) ([]model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	users := make([]model.User, 0)
	for _, u := range r.db.Users {
		if u.TeamID != nil && *u.TeamID == teamID {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}

func (r *UserRepo) SetRole(_ context.Context, id, teamID string, role model.Role) (model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.Users[id]
	if !ok || u.TeamID == nil || *u.TeamID != teamID {
		return model.User{}, repository.ErrUserNotFound
	}
	u.Role = role
	r.db.Users[id] = u
	return u, nil
}
