package model

// Team описывает команду и её проект. Команде принадлежат пользователи, задачи и колонки.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ProjectName string `json:"project_name"`
}

// TeamPage описывает команду вместе с её участниками, отсортированными по имени.
type TeamPage struct {
	Team    Team   `json:"team"`
	Members []User `json:"members"`
}
