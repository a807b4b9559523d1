package inmemory

import (
	"context"

	"scroom/internal/model"
	"scroom/internal/repository"
)

type TeamRepo struct {
	db *Storage
}

func NewTeamRepo(db *Storage) *TeamRepo {
	return &TeamRepo{db: db}
}

func (r *TeamRepo) GetByID(_ context.Context, id string) (model.Team, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	team, ok := r.db.Teams[id]
	if !ok {
		return model.Team{}, repository.ErrTeamNotFound
	}
	return team, nil
}

func (r *TeamRepo) UpdateDetails(_ context.Context, id, name, projectName string) (model.Team, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	team, ok := r.db.Teams[id]
	if !ok {
		return model.Team{}, repository.ErrTeamNotFound
	}
	team.Name = name
	team.ProjectName = projectName
	r.db.Teams[id] = team
	return team, nil
}
