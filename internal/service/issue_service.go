package service

import (
	"context"
	"errors"
	"strings"

	"scroom/internal/auth"
	"scroom/internal/model"
	"scroom/internal/repository"
)

const (
	// DefaultRecentLimit — сколько задач показывает дашборд.
	DefaultRecentLimit = 5
	maxRecentLimit     = 50
)

// CreateIssueInput описывает новую задачу. Пустой TeamID означает команду из сессии.
type CreateIssueInput struct {
	Summary  string
	Status   string
	Backlog  model.Backlog
	TeamID   string
	Estimate *int
	Type     *string
	UserID   *string
}

// IssueService инкапсулирует создание, изменение и удаление задач и чтение бэклогов.
type IssueService struct {
	issues    IssueRepository
	statuses  StatusRepository
	users     UserRepository
	txManager TransactionManager
	policy    auth.Policy
}

// NewIssueService создаёт новый сервис задач с таблицей прав по умолчанию.
func NewIssueService(issues IssueRepository, statuses StatusRepository, users UserRepository, txManager TransactionManager) *IssueService {
	return &IssueService{
		issues:    issues,
		statuses:  statuses,
		users:     users,
		txManager: txManager,
		policy:    auth.DefaultPolicy,
	}
}

// CreateIssue создаёт задачу в команде пользователя. Статус должен быть колонкой этой команды,
// исполнитель — её участником.
func (s *IssueService) CreateIssue(ctx context.Context, sess auth.Session, in CreateIssueInput) (model.Issue, error) {
	if err := fromAuth(s.policy.Authorize(sess, auth.OpIssueCreate)); err != nil {
		return model.Issue{}, err
	}

	in.Summary = strings.TrimSpace(in.Summary)
	if in.Summary == "" {
		return model.Issue{}, ErrBadRequest("summary is required")
	}
	if in.Status == "" {
		return model.Issue{}, ErrBadRequest("status is required")
	}
	if !in.Backlog.Valid() {
		return model.Issue{}, ErrBadRequest("backlog must be sprint or product")
	}
	if in.Estimate != nil && *in.Estimate < 0 {
		return model.Issue{}, ErrBadRequest("estimate must not be negative")
	}
	if in.UserID != nil && *in.UserID == "" {
		in.UserID = nil
	}
	if in.TeamID != "" && in.TeamID != sess.TeamID {
		return model.Issue{}, ErrNotFound("team not found")
	}

	issue := model.Issue{
		Summary:  in.Summary,
		Status:   in.Status,
		Backlog:  in.Backlog,
		TeamID:   sess.TeamID,
		Estimate: in.Estimate,
		Type:     in.Type,
		UserID:   in.UserID,
	}

	var created model.Issue
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkStatus(ctx, sess.TeamID, issue.Status); err != nil {
			return err
		}
		if err := s.checkAssignee(ctx, sess.TeamID, issue.UserID); err != nil {
			return err
		}
		var errTx error
		created, errTx = s.issues.Create(ctx, issue)
		return errTx
	})
	if err != nil {
		return model.Issue{}, wrapIssueErr("failed to create issue", err)
	}
	return created, nil
}

// UpdateIssue частично обновляет задачу. Задача ищется по паре (id, teamID);
// teamID чужой команды неотличим от несуществующей задачи.
func (s *IssueService) UpdateIssue(ctx context.Context, sess auth.Session, id, teamID string, upd model.IssueUpdate) (model.Issue, error) {
	if err := fromAuth(s.policy.Authorize(sess, auth.OpIssueUpdate)); err != nil {
		return model.Issue{}, err
	}
	if upd.Backlog != nil {
		if err := fromAuth(s.policy.Authorize(sess, auth.OpIssueChangeBacklog)); err != nil {
			return model.Issue{}, err
		}
	}
	if err := validateUpdate(id, teamID, upd); err != nil {
		return model.Issue{}, err
	}
	if teamID != sess.TeamID {
		return model.Issue{}, ErrNotFound("issue not found")
	}

	var updated model.Issue
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if upd.Status != nil {
			if err := s.checkStatus(ctx, teamID, *upd.Status); err != nil {
				return err
			}
		}
		if err := s.checkAssignee(ctx, teamID, upd.UserID); err != nil {
			return err
		}
		var errTx error
		updated, errTx = s.issues.Update(ctx, id, teamID, upd)
		return errTx
	})
	if err != nil {
		return model.Issue{}, wrapIssueErr("failed to update issue", err)
	}
	return updated, nil
}

// DeleteIssue удаляет задачу команды пользователя и возвращает удалённую запись.
func (s *IssueService) DeleteIssue(ctx context.Context, sess auth.Session, id string) (model.Issue, error) {
	if err := fromAuth(s.policy.Authorize(sess, auth.OpIssueDelete)); err != nil {
		return model.Issue{}, err
	}
	if id == "" {
		return model.Issue{}, ErrBadRequest("id is required")
	}

	issue, err := s.issues.Delete(ctx, id, sess.TeamID)
	if err != nil {
		return model.Issue{}, wrapIssueErr("failed to delete issue", err)
	}
	return issue, nil
}

// ListBacklogs возвращает бэклоги спринта и продукта, каждый упорядочен по id.
func (s *IssueService) ListBacklogs(ctx context.Context, sess auth.Session) (model.Backlogs, error) {
	if err := requireTeam(sess); err != nil {
		return model.Backlogs{}, err
	}

	sprint, err := s.issues.ListByBacklog(ctx, sess.TeamID, model.BacklogSprint)
	if err != nil {
		return model.Backlogs{}, errInternal("failed to list sprint backlog", err)
	}
	product, err := s.issues.ListByBacklog(ctx, sess.TeamID, model.BacklogProduct)
	if err != nil {
		return model.Backlogs{}, errInternal("failed to list product backlog", err)
	}

	model.SortByID(sprint)
	model.SortByID(product)
	return model.Backlogs{Sprint: sprint, Product: product}, nil
}

// RecentIssues возвращает последние задачи команды для дашборда.
func (s *IssueService) RecentIssues(ctx context.Context, sess auth.Session, limit int) ([]model.Issue, error) {
	if err := requireTeam(sess); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	issues, err := s.issues.ListRecent(ctx, sess.TeamID, limit)
	if err != nil {
		return nil, errInternal("failed to list recent issues", err)
	}
	return issues, nil
}

func validateUpdate(id, teamID string, upd model.IssueUpdate) error {
	if id == "" {
		return ErrBadRequest("id is required")
	}
	if teamID == "" {
		return ErrBadRequest("team_id is required")
	}
	if upd.Empty() {
		return ErrBadRequest("nothing to update")
	}
	if upd.Summary != nil && strings.TrimSpace(*upd.Summary) == "" {
		return ErrBadRequest("summary must not be empty")
	}
	if upd.Status != nil && *upd.Status == "" {
		return ErrBadRequest("status must not be empty")
	}
	if upd.Backlog != nil && !upd.Backlog.Valid() {
		return ErrBadRequest("backlog must be sprint or product")
	}
	if upd.Estimate != nil && *upd.Estimate < 0 {
		return ErrBadRequest("estimate must not be negative")
	}
	if upd.UserID != nil && *upd.UserID == "" {
		return ErrBadRequest("user_id must not be empty")
	}
	return nil
}

// checkStatus проверяет, что у команды есть колонка value.
func (s *IssueService) checkStatus(ctx context.Context, teamID, value string) error {
	ok, err := s.statuses.Exists(ctx, teamID, value)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBadRequest("status " + value + " is not a column of this team")
	}
	return nil
}

// checkAssignee проверяет, что исполнитель состоит в команде.
func (s *IssueService) checkAssignee(ctx context.Context, teamID string, userID *string) error {
	if userID == nil || *userID == "" {
		return nil
	}
	u, err := s.users.GetByID(ctx, *userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrBadRequest("assignee not found")
		}
		return err
	}
	if u.TeamID == nil || *u.TeamID != teamID {
		return ErrBadRequest("assignee is not a member of the team")
	}
	return nil
}

// wrapIssueErr оставляет AppError как есть, а ошибки репозитория переводит в AppError.
func wrapIssueErr(msg string, err error) error {
	var app *AppError
	if errors.As(err, &app) {
		return app
	}
	if errors.Is(err, repository.ErrIssueNotFound) {
		return ErrNotFound("issue not found")
	}
	return errInternal(msg, err)
}
