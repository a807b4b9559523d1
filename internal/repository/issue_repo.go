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

// IssueRepo реализует репозиторий задач на базе PostgreSQL.
type IssueRepo struct {
	db *Postgres
}

// NewIssueRepo создаёт новый экземпляр IssueRepo c переданным подключением к PostgreSQL.
func NewIssueRepo(db *Postgres) *IssueRepo {
	return &IssueRepo{db: db}
}

const issueColumns = `id, summary, status, backlog, team_id, estimate, type, user_id, created_at`

func scanIssue(row pgx.Row) (model.Issue, error) {
	var issue model.Issue
	var backlog string
	var createdAt time.Time
	if err := row.Scan(
		&issue.ID, &issue.Summary, &issue.Status, &backlog, &issue.TeamID,
		&issue.Estimate, &issue.Type, &issue.UserID, &createdAt,
	); err != nil {
		return model.Issue{}, err
	}
	issue.Backlog = model.Backlog(backlog)
	issue.CreatedAt = &createdAt
	return issue, nil
}

func collectIssues(rows pgx.Rows) ([]model.Issue, error) {
	defer rows.Close()

	res := make([]model.Issue, 0)
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		res = append(res, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// Create сохраняет новую задачу. Если ID не задан, генерируется UUID.
func (r *IssueRepo) Create(ctx context.Context, issue model.Issue) (model.Issue, error) {
	if issue.ID == "" {
		issue.ID = uuid.NewString()
	}

	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
INSERT INTO issues (id, summary, status, backlog, team_id, estimate, type, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+issueColumns,
		issue.ID, issue.Summary, issue.Status, string(issue.Backlog), issue.TeamID,
		issue.Estimate, issue.Type, issue.UserID)

	created, err := scanIssue(row)
	if err != nil {
		return model.Issue{}, fmt.Errorf("insert issue: %w", err)
	}
	return created, nil
}

// GetByID возвращает задачу команды по идентификатору.
// Если задачи нет или она принадлежит другой команде, возвращает ErrIssueNotFound.
func (r *IssueRepo) GetByID(ctx context.Context, id, teamID string) (model.Issue, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
SELECT `+issueColumns+`
FROM issues
WHERE id = $1 AND team_id = $2
`, id, teamID)

	issue, err := scanIssue(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Issue{}, ErrIssueNotFound
		}
		return model.Issue{}, fmt.Errorf("get issue: %w", err)
	}
	return issue, nil
}

// Update частично обновляет задачу команды: nil-поля обновления не трогаются.
// Если пара (id, teamID) ничего не находит, возвращает ErrIssueNotFound.
func (r *IssueRepo) Update(ctx context.Context, id, teamID string, upd model.IssueUpdate) (model.Issue, error) {
	var backlog *string
	if upd.Backlog != nil {
		b := string(*upd.Backlog)
		backlog = &b
	}

	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
UPDATE issues
SET summary  = COALESCE($3, summary),
    status   = COALESCE($4, status),
    backlog  = COALESCE($5, backlog),
    estimate = COALESCE($6, estimate),
    type     = COALESCE($7, type),
    user_id  = COALESCE($8, user_id)
WHERE id = $1 AND team_id = $2
RETURNING `+issueColumns,
		id, teamID, upd.Summary, upd.Status, backlog, upd.Estimate, upd.Type, upd.UserID)

	issue, err := scanIssue(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Issue{}, ErrIssueNotFound
		}
		return model.Issue{}, fmt.Errorf("update issue: %w", err)
	}
	return issue, nil
}

// Delete удаляет задачу команды и возвращает удалённую запись.
func (r *IssueRepo) Delete(ctx context.Context, id, teamID string) (model.Issue, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
DELETE FROM issues
WHERE id = $1 AND team_id = $2
RETURNING `+issueColumns, id, teamID)

	issue, err := scanIssue(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Issue{}, ErrIssueNotFound
		}
		return model.Issue{}, fmt.Errorf("delete issue: %w", err)
	}
	return issue, nil
}

// ListByBacklog возвращает задачи бэклога команды по убыванию оценки, без оценки — в конце.
func (r *IssueRepo) ListByBacklog(ctx context.Context, teamID string, backlog model.Backlog) ([]model.Issue, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT `+issueColumns+`
FROM issues
WHERE team_id = $1 AND backlog = $2
ORDER BY estimate DESC NULLS LAST, created_at, id
`, teamID, string(backlog))
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}
	return collectIssues(rows)
}

// ListByStatus возвращает задачи команды, стоящие в колонке status.
func (r *IssueRepo) ListByStatus(ctx context.Context, teamID, status string) ([]model.Issue, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT `+issueColumns+`
FROM issues
WHERE team_id = $1 AND status = $2
ORDER BY created_at, id
`, teamID, status)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}
	return collectIssues(rows)
}

// ListRecent возвращает не более limit последних задач команды.
func (r *IssueRepo) ListRecent(ctx context.Context, teamID string, limit int) ([]model.Issue, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT `+issueColumns+`
FROM issues
WHERE team_id = $1
ORDER BY created_at DESC, id
LIMIT $2
`, teamID, limit)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}
	return collectIssues(rows)
}
