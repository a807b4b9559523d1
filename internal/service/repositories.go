// Package service содержит бизнес-логику доски, бэклогов и команды.
// Каждая операция получает сессию явно и проверяет права роли до обращения к хранилищу.
package service

import (
	"context"

	"scroom/internal/model"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// IssueRepository описывает контракт репозитория задач.
type IssueRepository interface {
	Create(ctx context.Context, issue model.Issue) (model.Issue, error)
	GetByID(ctx context.Context, id, teamID string) (model.Issue, error)
	Update(ctx context.Context, id, teamID string, upd model.IssueUpdate) (model.Issue, error)
	Delete(ctx context.Context, id, teamID string) (model.Issue, error)
	ListByBacklog(ctx context.Context, teamID string, backlog model.Backlog) ([]model.Issue, error)
	ListByStatus(ctx context.Context, teamID, status string) ([]model.Issue, error)
	ListRecent(ctx context.Context, teamID string, limit int) ([]model.Issue, error)
}

// StatusRepository описывает контракт репозитория колонок доски.
type StatusRepository interface {
	ListByTeam(ctx context.Context, teamID string) ([]model.Status, error)
	SeedDefaults(ctx context.Context, teamID string, columns []model.DefaultColumn) (int, error)
	Create(ctx context.Context, st model.Status) (model.Status, error)
	Delete(ctx context.Context, id, teamID string) (model.Status, error)
	Exists(ctx context.Context, teamID, value string) (bool, error)
}

// TeamRepository описывает контракт репозитория команд.
type TeamRepository interface {
	GetByID(ctx context.Context, id string) (model.Team, error)
	UpdateDetails(ctx context.Context, id, name, projectName string) (model.Team, error)
}

// UserRepository описывает контракт репозитория пользователей.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	ListByTeam(ctx context.Context, teamID string) ([]model.User, error)
	SetRole(ctx context.Context, id, teamID string, role model.Role) (model.User, error)
}
