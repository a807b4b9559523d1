package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"scroom/internal/auth"
	"scroom/internal/board"
	"scroom/internal/model"
	"scroom/internal/repository"
)

// DeletedStatus — результат удаления колонки. Orphaned — задачи, которые в ней стояли;
// их статус остаётся прежним.
type DeletedStatus struct {
	Status   model.Status  `json:"status"`
	Orphaned []model.Issue `json:"orphaned_issues"`
}

// BoardService собирает доску команды и управляет её колонками.
type BoardService struct {
	issues    IssueRepository
	statuses  StatusRepository
	teams     TeamRepository
	users     UserRepository
	txManager TransactionManager
	policy    auth.Policy
	log       *slog.Logger
}

// NewBoardService создаёт новый сервис доски.
func NewBoardService(
	issues IssueRepository,
	statuses StatusRepository,
	teams TeamRepository,
	users UserRepository,
	txManager TransactionManager,
	log *slog.Logger,
) *BoardService {
	return &BoardService{
		issues:    issues,
		statuses:  statuses,
		teams:     teams,
		users:     users,
		txManager: txManager,
		policy:    auth.DefaultPolicy,
		log:       log,
	}
}

// GetBoard возвращает команду, её участников, колонки и задачи спринта,
// разложенные по колонкам. Если колонок нет, доска засевается колонками по умолчанию.
func (s *BoardService) GetBoard(ctx context.Context, sess auth.Session) (board.Board, error) {
	if err := requireTeam(sess); err != nil {
		return board.Board{}, err
	}
	teamID := sess.TeamID

	var (
		team     model.Team
		users    []model.User
		statuses []model.Status
		issues   []model.Issue
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if team, err = s.teams.GetByID(gctx, teamID); err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if users, err = s.users.ListByTeam(gctx, teamID); err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if statuses, err = s.ensureStatuses(gctx, teamID); err != nil {
			return fmt.Errorf("list statuses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if issues, err = s.issues.ListByBacklog(gctx, teamID, model.BacklogSprint); err != nil {
			return fmt.Errorf("list issues: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return board.Board{}, ErrNotFound("team not found")
		}
		return board.Board{}, errInternal("failed to load board", err)
	}

	return board.Project(team, users, statuses, issues), nil
}

// ensureStatuses читает колонки команды и засевает набор по умолчанию, если их нет.
func (s *BoardService) ensureStatuses(ctx context.Context, teamID string) ([]model.Status, error) {
	statuses, err := s.statuses.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if len(statuses) > 0 {
		return statuses, nil
	}

	inserted, err := s.statuses.SeedDefaults(ctx, teamID, model.DefaultColumns)
	if err != nil {
		return nil, err
	}
	if inserted > 0 {
		s.log.Info("seeded default columns",
			slog.String("team_id", teamID),
			slog.Int("count", inserted),
		)
	}
	return s.statuses.ListByTeam(ctx, teamID)
}

// CreateStatus добавляет колонку в конец доски. Занятое value даёт STATUS_EXISTS.
func (s *BoardService) CreateStatus(ctx context.Context, sess auth.Session, title, value string) (model.Status, error) {
	if err := fromAuth(s.policy.Authorize(sess, auth.OpStatusCreate)); err != nil {
		return model.Status{}, err
	}
	title = strings.TrimSpace(title)
	value = strings.TrimSpace(value)
	if title == "" || value == "" {
		return model.Status{}, ErrBadRequest("title and value are required")
	}

	st, err := s.statuses.Create(ctx, model.Status{Title: title, Value: value, TeamID: sess.TeamID})
	if err != nil {
		if errors.Is(err, repository.ErrStatusExists) {
			return model.Status{}, ErrDomain("STATUS_EXISTS", "column value already exists")
		}
		return model.Status{}, errInternal("failed to create status", err)
	}
	return st, nil
}

// AddColumn добавляет колонку «Column N» со значением «columnN», где N — номер
// следующей колонки; занятые значения пропускаются.
func (s *BoardService) AddColumn(ctx context.Context, sess auth.Session) (model.Status, error) {
	if err := fromAuth(s.policy.Authorize(sess, auth.OpStatusCreate)); err != nil {
		return model.Status{}, err
	}

	existing, err := s.statuses.ListByTeam(ctx, sess.TeamID)
	if err != nil {
		return model.Status{}, errInternal("failed to list statuses", err)
	}
	taken := make(map[string]struct{}, len(existing))
	for _, st := range existing {
		taken[st.Value] = struct{}{}
	}

	n := len(existing) + 1
	for {
		if _, ok := taken[fmt.Sprintf("column%d", n)]; !ok {
			break
		}
		n++
	}

	return s.CreateStatus(ctx, sess, fmt.Sprintf("Column %d", n), fmt.Sprintf("column%d", n))
}

// DeleteStatus удаляет колонку команды. Задачи колонки не удаляются и сохраняют
// её значение в поле status.
func (s *BoardService) DeleteStatus(ctx context.Context, sess auth.Session, id string) (DeletedStatus, error) {
	if err := fromAuth(s.policy.Authorize(sess, auth.OpStatusDelete)); err != nil {
		return DeletedStatus{}, err
	}
	if id == "" {
		return DeletedStatus{}, ErrBadRequest("id is required")
	}

	st, err := s.statuses.Delete(ctx, id, sess.TeamID)
	if err != nil {
		if errors.Is(err, repository.ErrStatusNotFound) {
			return DeletedStatus{}, ErrNotFound("status not found")
		}
		return DeletedStatus{}, errInternal("failed to delete status", err)
	}

	orphaned, err := s.issues.ListByStatus(ctx, sess.TeamID, st.Value)
	if err != nil {
		return DeletedStatus{}, errInternal("failed to list orphaned issues", err)
	}
	if len(orphaned) > 0 {
		s.log.Warn("column deleted with issues",
			slog.String("team_id", sess.TeamID),
			slog.String("status", st.Value),
			slog.Int("issues", len(orphaned)),
		)
	}
	return DeletedStatus{Status: st, Orphaned: orphaned}, nil
}

// MoveIssue переносит задачу в колонку target. Перенос в текущую колонку
// возвращает задачу без записи.
func (s *BoardService) MoveIssue(ctx context.Context, sess auth.Session, id, target string) (model.Issue, error) {
	if err := fromAuth(s.policy.Authorize(sess, auth.OpIssueMove)); err != nil {
		return model.Issue{}, err
	}
	if id == "" || target == "" {
		return model.Issue{}, ErrBadRequest("id and status are required")
	}

	var moved model.Issue
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		issue, err := s.issues.GetByID(ctx, id, sess.TeamID)
		if err != nil {
			return err
		}
		if !board.NeedsMove(issue.Status, target) {
			moved = issue
			return nil
		}

		ok, err := s.statuses.Exists(ctx, sess.TeamID, target)
		if err != nil {
			return err
		}
		if !ok {
			return ErrBadRequest("status " + target + " is not a column of this team")
		}

		moved, err = s.issues.Update(ctx, id, sess.TeamID, model.IssueUpdate{Status: &target})
		return err
	})
	if err != nil {
		return model.Issue{}, wrapIssueErr("failed to move issue", err)
	}
	return moved, nil
}
