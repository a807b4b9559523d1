// Package model содержит доменные структуры для команд, пользователей, задач и колонок доски.
package model

// Role описывает роль пользователя в команде.
type Role string

const (
	RoleAdmin             Role = "admin"
	RoleScrumMaster       Role = "scrumMaster"
	RoleProductOwner      Role = "productOwner"
	RoleProxyProductOwner Role = "proxyProductOwner"
	RoleDeveloper         Role = "developer"
	RoleGuest             Role = "guest"
)

// Roles перечисляет все роли в порядке отображения в выпадающем списке.
var Roles = []Role{
	RoleAdmin,
	RoleScrumMaster,
	RoleProductOwner,
	RoleProxyProductOwner,
	RoleDeveloper,
	RoleGuest,
}

// Valid сообщает, является ли значение одной из известных ролей.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User описывает пользователя, его контакты, роль и команду.
// TeamID пуст, пока пользователь не прошёл онбординг.
type User struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Image  string  `json:"image"`
	Role   Role    `json:"role"`
	TeamID *string `json:"team_id,omitempty"`
}
