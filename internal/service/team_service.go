package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"scroom/internal/auth"
	"scroom/internal/model"
	"scroom/internal/repository"
)

const minTeamFieldLen = 3

// TeamService содержит бизнес-логику страницы команды: состав, реквизиты и роли.
type TeamService struct {
	teams  TeamRepository
	users  UserRepository
	policy auth.Policy
}

// NewTeamService создаёт новый сервис для операций над командой.
func NewTeamService(teams TeamRepository, users UserRepository) *TeamService {
	return &TeamService{
		teams:  teams,
		users:  users,
		policy: auth.DefaultPolicy,
	}
}

// GetTeam возвращает команду пользователя вместе с участниками.
func (s *TeamService) GetTeam(ctx context.Context, sess auth.Session) (model.TeamPage, error) {
	if err := requireTeam(sess); err != nil {
		return model.TeamPage{}, err
	}

	team, err := s.teams.GetByID(ctx, sess.TeamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.TeamPage{}, ErrNotFound("team not found")
		}
		return model.TeamPage{}, errInternal("failed to get team", err)
	}

	members, err := s.users.ListByTeam(ctx, sess.TeamID)
	if err != nil {
		return model.TeamPage{}, errInternal("failed to list team members", err)
	}
	return model.TeamPage{Team: team, Members: members}, nil
}

// UpdateTeamDetails меняет название команды и проекта. Оба поля не короче трёх символов.
func (s *TeamService) UpdateTeamDetails(ctx context.Context, sess auth.Session, name, projectName string) (model.Team, error) {
	if err := fromAuth(s.policy.Authorize(sess, auth.OpTeamUpdate)); err != nil {
		return model.Team{}, err
	}
	name = strings.TrimSpace(name)
	projectName = strings.TrimSpace(projectName)
	if utf8.RuneCountInString(name) < minTeamFieldLen || utf8.RuneCountInString(projectName) < minTeamFieldLen {
		return model.Team{}, ErrBadRequest("name and project_name must be at least 3 characters")
	}

	team, err := s.teams.UpdateDetails(ctx, sess.TeamID, name, projectName)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.Team{}, ErrNotFound("team not found")
		}
		return model.Team{}, errInternal("failed to update team", err)
	}
	return team, nil
}

// ChangeRole назначает участнику команды новую роль. Доступно только администратору.
func (s *TeamService) ChangeRole(ctx context.Context, sess auth.Session, userID string, role model.Role) (model.User, error) {
	if err := fromAuth(s.policy.Authorize(sess, auth.OpUserChangeRole)); err != nil {
		return model.User{}, err
	}
	if userID == "" {
		return model.User{}, ErrBadRequest("user_id is required")
	}
	if !role.Valid() {
		return model.User{}, ErrBadRequest("unknown role")
	}

	u, err := s.users.SetRole(ctx, userID, sess.TeamID, role)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, ErrNotFound("user not found")
		}
		return model.User{}, errInternal("failed to change role", err)
	}
	return u, nil
}
