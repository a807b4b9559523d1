package model

import "time"

// Status описывает колонку доски. Value уникально в пределах команды.
type Status struct {
	ID        string     `json:"id"`
	Value     string     `json:"value"`
	Title     string     `json:"title"`
	TeamID    string     `json:"team_id"`
	Position  int        `json:"position"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// DefaultColumn описывает колонку, которой засевается доска команды без колонок.
type DefaultColumn struct {
	Value string
	Title string
}

// DefaultColumns — набор колонок по умолчанию, позиции совпадают с индексами.
var DefaultColumns = []DefaultColumn{
	{Value: "toDo", Title: "To Do"},
	{Value: "inProgress", Title: "In Progress"},
	{Value: "done", Title: "Done"},
}
