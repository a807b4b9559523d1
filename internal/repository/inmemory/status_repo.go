package inmemory

import (
	"context"
	"sort"

	"scroom/internal/model"
	"scroom/internal/repository"

	"github.com/google/uuid"
)

type StatusRepo struct {
	db *Storage
}

func NewStatusRepo(db *Storage) *StatusRepo {
	return &StatusRepo{db: db}
}

func (r *StatusRepo) ListByTeam(_ context.Context, teamID string) ([]model.Status, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.listLocked(teamID), nil
}

func (r *StatusRepo) listLocked(teamID string) []model.Status {
	rows := make([]statusRow, 0)
	for _, row := range r.db.Statuses {
		if row.status.TeamID == teamID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].status.Position != rows[j].status.Position {
			return rows[i].status.Position < rows[j].status.Position
		}
		return rows[i].seq < rows[j].seq
	})

	res := make([]model.Status, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.status)
	}
	return res
}

func (r *StatusRepo) insertLocked(st model.Status) model.Status {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	seq, now := r.db.next()
	st.CreatedAt = now
	r.db.Statuses[st.ID] = statusRow{status: st, seq: seq}
	return st
}

func (r *StatusRepo) existsLocked(teamID, value string) bool {
	for _, row := range r.db.Statuses {
		if row.status.TeamID == teamID && row.status.Value == value {
			return true
		}
	}
	return false
}

// SeedDefaults выполняет проверку и вставку под одной блокировкой.
func (r *StatusRepo) SeedDefaults(_ context.Context, teamID string, columns []model.DefaultColumn) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if len(r.listLocked(teamID)) > 0 {
		return 0, nil
	}
	inserted := 0
	for i, c := range columns {
		if r.existsLocked(teamID, c.Value) {
			continue
		}
		r.insertLocked(model.Status{Value: c.Value, Title: c.Title, TeamID: teamID, Position: i})
		inserted++
	}
	return inserted, nil
}

func (r *StatusRepo) Create(_ context.Context, st model.Status) (model.Status, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.existsLocked(st.TeamID, st.Value) {
		return model.Status{}, repository.ErrStatusExists
	}
	st.Position = 0
	for _, existing := range r.listLocked(st.TeamID) {
		if existing.Position >= st.Position {
			st.Position = existing.Position + 1
		}
	}
	return r.insertLocked(st), nil
}

func (r *StatusRepo) Delete(_ context.Context, id, teamID string) (model.Status, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	row, ok := r.db.Statuses[id]
	if !ok || row.status.TeamID != teamID {
		return model.Status{}, repository.ErrStatusNotFound
	}
	delete(r.db.Statuses, id)
	return row.status, nil
}

func (r *StatusRepo) Exists(_ context.Context, teamID, value string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.existsLocked(teamID, value), nil
}
