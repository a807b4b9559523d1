// Package inmemory реализует репозитории поверх структур в памяти процесса.
// Используется в тестах сервисов и для локального запуска без PostgreSQL.
package inmemory

import (
	"context"
	"sync"
	"time"

	"scroom/internal/model"
)

type issueRow struct {
	issue model.Issue
	seq   int64
}

type statusRow struct {
	status model.Status
	seq    int64
}

// Storage хранит все записи. Доступ к картам — только под mu.
type Storage struct {
	mu       sync.Mutex
	seq      int64
	now      func() time.Time
	Teams    map[string]model.Team
	Users    map[string]model.User
	Issues   map[string]issueRow
	Statuses map[string]statusRow
}

// NewStorage создаёт пустое хранилище.
func NewStorage() *Storage {
	return &Storage{
		now:      time.Now,
		Teams:    make(map[string]model.Team),
		Users:    make(map[string]model.User),
		Issues:   make(map[string]issueRow),
		Statuses: make(map[string]statusRow),
	}
}

func (s *Storage) next() (int64, *time.Time) {
	s.seq++
	t := s.now().UTC()
	return s.seq, &t
}

// AddTeam добавляет команду вместе с участниками.
func (s *Storage) AddTeam(team model.Team, members ...model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Teams[team.ID] = team
	for _, m := range members {
		teamID := team.ID
		m.TeamID = &teamID
		s.Users[m.ID] = m
	}
}

// AddUser добавляет пользователя как есть, в том числе без команды.
func (s *Storage) AddUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Users[u.ID] = u
}

// TransactionManager выполняет функцию без изоляции: каждый репозиторий
// сам берёт блокировку хранилища.
type TransactionManager struct{}

// NewTransactionManager создаёт менеджер транзакций для хранилища в памяти.
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// RunInTransaction вызывает fn.
func (TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
