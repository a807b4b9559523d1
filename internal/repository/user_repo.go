package repository

import (
	"context"
	"errors"
	"fmt"

	"scroom/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepo реализует репозиторий пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, name, email, image, role, team_id`

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Image, &role, &u.TeamID); err != nil {
		return model.User{}, err
	}
	u.Role = model.Role(role)
	return u, nil
}

// GetByID возвращает пользователя по идентификатору.
// Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	u, err := scanUser(q.QueryRow(ctx, `
SELECT `+userColumns+`
FROM users
WHERE id = $1
`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListByTeam возвращает участников команды, отсортированных по имени.
func (r *UserRepo) ListByTeam(ctx context.Context, teamID string) ([]model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT `+userColumns+`
FROM users
WHERE team_id = $1
ORDER BY name, id
`, teamID)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return users, nil
}

// SetRole меняет роль участника команды и возвращает обновлённого пользователя.
// Пользователь другой команды считается ненайденным.
func (r *UserRepo) SetRole(ctx context.Context, id, teamID string, role model.Role) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	u, err := scanUser(q.QueryRow(ctx, `
UPDATE users
SET role = $3
WHERE id = $1 AND team_id = $2
RETURNING `+userColumns, id, teamID, string(role)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("update user role: %w", err)
	}
	return u, nil
}
