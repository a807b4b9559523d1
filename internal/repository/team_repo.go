package repository

import (
	"context"
	"errors"
	"fmt"

	"scroom/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TeamRepo struct {
	db *Postgres
}

func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

func (r *TeamRepo) GetByID(ctx context.Context, id string) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)
	var t model.Team
	err := q.QueryRow(ctx, `
SELECT id, name, project_name
FROM teams
WHERE id = $1
`, id).Scan(&t.ID, &t.Name, &t.ProjectName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

func (r *TeamRepo) UpdateDetails(ctx context.Context, id, name, projectName string) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)
	var t model.Team
	err := q.QueryRow(ctx, `
UPDATE teams
SET name = $2,
    project_name = $3
WHERE id = $1
RETURNING id, name, project_name
`, id, name, projectName).Scan(&t.ID, &t.Name, &t.ProjectName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("update team: %w", err)
	}
	return t, nil
}

// CreateTeamWithMembers создаёт команду и добавляет в неё пользователей одним вызовом.
// Существующие пользователи переводятся в новую команду с указанной ролью.
func (r *TeamRepo) CreateTeamWithMembers(ctx context.Context, t model.Team, members []model.User) (model.Team, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return model.Team{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	_, err = tx.Exec(ctx, `INSERT INTO teams (id, name, project_name) VALUES ($1, $2, $3)`, t.ID, t.Name, t.ProjectName)
	if err != nil {
		return model.Team{}, fmt.Errorf("insert team: %w", err)
	}

	for _, m := range members {
		_, err = tx.Exec(ctx, `
INSERT INTO users (id, name, email, image, role, team_id)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE
SET name    = EXCLUDED.name,
    email   = EXCLUDED.email,
    image   = EXCLUDED.image,
    role    = EXCLUDED.role,
    team_id = EXCLUDED.team_id
`, m.ID, m.Name, m.Email, m.Image, string(m.Role), t.ID)
		if err != nil {
			return model.Team{}, fmt.Errorf("upsert user %s: %w", m.ID, err)
		}
	}

	return t, nil
}
