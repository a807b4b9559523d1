package inmemory

import (
	"context"
	"sort"

	"scroom/internal/model"
	"scroom/internal/repository"

	"github.com/google/uuid"
)

type IssueRepo struct {
	db *Storage
}

func NewIssueRepo(db *Storage) *IssueRepo {
	return &IssueRepo{db: db}
}

func (r *IssueRepo) Create(_ context.Context, issue model.Issue) (model.Issue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if issue.ID == "" {
		issue.ID = uuid.NewString()
	}
	seq, now := r.db.next()
	issue.CreatedAt = now
	r.db.Issues[issue.ID] = issueRow{issue: issue, seq: seq}
	return issue, nil
}

func (r *IssueRepo) GetByID(_ context.Context, id, teamID string) (model.Issue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	row, ok := r.db.Issues[id]
	if !ok || row.issue.TeamID != teamID {
		return model.Issue{}, repository.ErrIssueNotFound
	}
	return row.issue, nil
}

func (r *IssueRepo) Update(_ context.Context, id, teamID string, upd model.IssueUpdate) (model.Issue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	row, ok := r.db.Issues[id]
	if !ok || row.issue.TeamID != teamID {
		return model.Issue{}, repository.ErrIssueNotFound
	}
	row.issue = upd.Apply(row.issue)
	r.db.Issues[id] = row
	return row.issue, nil
}

func (r *IssueRepo) Delete(_ context.Context, id, teamID string) (model.Issue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	row, ok := r.db.Issues[id]
	if !ok || row.issue.TeamID != teamID {
		return model.Issue{}, repository.ErrIssueNotFound
	}
	delete(r.db.Issues, id)
	return row.issue, nil
}

// filter возвращает задачи команды в порядке создания.
func (r *IssueRepo) filter(keep func(model.Issue) bool) []model.Issue {
	rows := make([]issueRow, 0)
	for _, row := range r.db.Issues {
		if keep(row.issue) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	res := make([]model.Issue, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.issue)
	}
	return res
}

func (r *IssueRepo) ListByBacklog(_ context.Context, teamID string, backlog model.Backlog) ([]model.Issue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	res := r.filter(func(i model.Issue) bool { return i.TeamID == teamID && i.Backlog == backlog })
	model.SortByEstimate(res)
	return res, nil
}

func (r *IssueRepo) ListByStatus(_ context.Context, teamID, status string) ([]model.Issue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.filter(func(i model.Issue) bool { return i.TeamID == teamID && i.Status == status }), nil
}

func (r *IssueRepo) ListRecent(_ context.Context, teamID string, limit int) ([]model.Issue, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	res := r.filter(func(i model.Issue) bool { return i.TeamID == teamID })
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	if limit >= 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}
