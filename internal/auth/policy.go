package auth

import (
	"fmt"
	"sort"

	"scroom/internal/model"
)

// Operation — мутация, доступ к которой ограничивается ролью.
type Operation string

const (
	OpIssueCreate        Operation = "issue:create"
	OpIssueUpdate        Operation = "issue:update"
	OpIssueChangeBacklog Operation = "issue:change_backlog"
	OpIssueMove          Operation = "issue:move"
	OpIssueDelete        Operation = "issue:delete"
	OpStatusCreate       Operation = "status:create"
	OpStatusDelete       Operation = "status:delete"
	OpTeamUpdate         Operation = "team:update"
	OpUserChangeRole     Operation = "user:change_role"
)

// Policy сопоставляет операции множество допущенных ролей.
type Policy map[Operation][]model.Role

var (
	owners     = []model.Role{model.RoleAdmin, model.RoleProductOwner, model.RoleProxyProductOwner}
	members    = []model.Role{model.RoleAdmin, model.RoleScrumMaster, model.RoleProductOwner, model.RoleProxyProductOwner, model.RoleDeveloper}
	boardAdmin = []model.Role{model.RoleAdmin, model.RoleScrumMaster, model.RoleProductOwner}
	adminOnly  = []model.Role{model.RoleAdmin}
)

// DefaultPolicy — таблица прав, которую сервисы проверяют перед каждой мутацией.
var DefaultPolicy = Policy{
	OpIssueCreate:        owners,
	OpIssueChangeBacklog: owners,
	OpIssueUpdate:        members,
	OpIssueMove:          members,
	OpIssueDelete:        {model.RoleAdmin, model.RoleScrumMaster, model.RoleProductOwner, model.RoleProxyProductOwner},
	OpStatusCreate:       boardAdmin,
	OpStatusDelete:       boardAdmin,
	OpTeamUpdate:         adminOnly,
	OpUserChangeRole:     adminOnly,
}

// Allows сообщает, допускает ли политика операцию для роли.
// Операции, отсутствующие в таблице, запрещены.
func (p Policy) Allows(role model.Role, op Operation) bool {
	for _, r := range p[op] {
		if r == role {
			return true
		}
	}
	return false
}

// Operations возвращает отсортированный список операций, доступных роли.
// Клиент по нему прячет недоступные кнопки; проверка на сервере от этого не зависит.
func (p Policy) Operations(role model.Role) []Operation {
	ops := make([]Operation, 0, len(p))
	for op := range p {
		if p.Allows(role, op) {
			ops = append(ops, op)
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Authorize проверяет сессию целиком: наличие команды и право роли на операцию.
func (p Policy) Authorize(s Session, op Operation) error {
	if s.UserID == "" {
		return ErrUnauthenticated
	}
	if !s.HasTeam() {
		return ErrNoTeam
	}
	if !p.Allows(s.Role, op) {
		return fmt.Errorf("%w: %s cannot %s", ErrForbidden, s.Role, op)
	}
	return nil
}
