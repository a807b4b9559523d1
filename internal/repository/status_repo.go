package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scroom/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StatusRepo реализует репозиторий колонок доски на базе PostgreSQL.
type StatusRepo struct {
	db *Postgres
}

// NewStatusRepo создаёт новый экземпляр StatusRepo.
func NewStatusRepo(db *Postgres) *StatusRepo {
	return &StatusRepo{db: db}
}

const statusColumns = `id, value, title, team_id, position, created_at`

func scanStatus(row pgx.Row) (model.Status, error) {
	var st model.Status
	var createdAt time.Time
	if err := row.Scan(&st.ID, &st.Value, &st.Title, &st.TeamID, &st.Position, &createdAt); err != nil {
		return model.Status{}, err
	}
	st.CreatedAt = &createdAt
	return st, nil
}

// ListByTeam возвращает колонки команды в порядке отображения.
func (r *StatusRepo) ListByTeam(ctx context.Context, teamID string) ([]model.Status, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT `+statusColumns+`
FROM statuses
WHERE team_id = $1
ORDER BY position, created_at, value
`, teamID)
	if err != nil {
		return nil, fmt.Errorf("query statuses: %w", err)
	}
	defer rows.Close()

	res := make([]model.Status, 0)
	for rows.Next() {
		st, err := scanStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		res = append(res, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// SeedDefaults одним запросом вставляет набор колонок по умолчанию, если у команды нет ни одной колонки.
// Параллельные вызовы для одной команды не создают дублей: конфликт по (team_id, value) гасится.
// Возвращает число вставленных строк.
func (r *StatusRepo) SeedDefaults(ctx context.Context, teamID string, columns []model.DefaultColumn) (int, error) {
	ids := make([]string, 0, len(columns))
	values := make([]string, 0, len(columns))
	titles := make([]string, 0, len(columns))
	positions := make([]int32, 0, len(columns))
	for i, c := range columns {
		ids = append(ids, uuid.NewString())
		values = append(values, c.Value)
		titles = append(titles, c.Title)
		positions = append(positions, int32(i))
	}

	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `
INSERT INTO statuses (id, value, title, team_id, position)
SELECT d.id, d.value, d.title, $1, d.position
FROM unnest($2::text[], $3::text[], $4::text[], $5::int[]) AS d(id, value, title, position)
WHERE NOT EXISTS (SELECT 1 FROM statuses WHERE team_id = $1)
ON CONFLICT (team_id, value) DO NOTHING
`, teamID, ids, values, titles, positions)
	if err != nil {
		return 0, fmt.Errorf("seed statuses: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Create добавляет колонку в конец доски команды.
// При занятом value возвращает ErrStatusExists.
func (r *StatusRepo) Create(ctx context.Context, st model.Status) (model.Status, error) {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}

	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
INSERT INTO statuses (id, value, title, team_id, position)
VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position) + 1, 0) FROM statuses WHERE team_id = $4))
RETURNING `+statusColumns, st.ID, st.Value, st.Title, st.TeamID)

	created, err := scanStatus(row)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Status{}, ErrStatusExists
		}
		return model.Status{}, fmt.Errorf("insert status: %w", err)
	}
	return created, nil
}

// Delete удаляет колонку команды. Задачи, стоящие в ней, не затрагиваются.
func (r *StatusRepo) Delete(ctx context.Context, id, teamID string) (model.Status, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
DELETE FROM statuses
WHERE id = $1 AND team_id = $2
RETURNING `+statusColumns, id, teamID)

	st, err := scanStatus(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Status{}, ErrStatusNotFound
		}
		return model.Status{}, fmt.Errorf("delete status: %w", err)
	}
	return st, nil
}

// Exists проверяет, есть ли у команды колонка с данным value.
func (r *StatusRepo) Exists(ctx context.Context, teamID, value string) (bool, error) {
	q := r.db.GetQueryExecutor(ctx)
	var exists bool
	err := q.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM statuses WHERE team_id = $1 AND value = $2)
`, teamID, value).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check status: %w", err)
	}
	return exists, nil
}
