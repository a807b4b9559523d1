// Package board раскладывает задачи спринта по колонкам доски и реализует
// перетаскивание задач между колонками.
package board

import (
	"sort"

	"scroom/internal/model"
)

// Column — колонка доски вместе с задачами, чей статус совпадает с её значением.
type Column struct {
	Status model.Status  `json:"status"`
	Issues []model.Issue `json:"issues"`
}

// Board — состояние доски команды.
type Board struct {
	Team     model.Team     `json:"team"`
	Users    []model.User   `json:"users"`
	Statuses []model.Status `json:"statuses"`
	Issues   []model.Issue  `json:"issues"`
	Columns  []Column       `json:"columns"`
	// Orphaned содержит задачи, чья колонка была удалена.
	Orphaned []model.Issue `json:"orphaned"`
}

// SortStatuses упорядочивает колонки по позиции, при равенстве — по значению.
func SortStatuses(statuses []model.Status) {
	sort.SliceStable(statuses, func(i, j int) bool {
		if statuses[i].Position != statuses[j].Position {
			return statuses[i].Position < statuses[j].Position
		}
		return statuses[i].Value < statuses[j].Value
	})
}

// Group раскладывает задачи по колонкам. Порядок задач внутри колонки
// совпадает с порядком во входном срезе.
func Group(statuses []model.Status, issues []model.Issue) ([]Column, []model.Issue) {
	columns := make([]Column, 0, len(statuses))
	index := make(map[string]int, len(statuses))
	for i, st := range statuses {
		columns = append(columns, Column{Status: st, Issues: make([]model.Issue, 0)})
		index[st.Value] = i
	}

	orphaned := make([]model.Issue, 0)
	for _, issue := range issues {
		i, ok := index[issue.Status]
		if !ok {
			orphaned = append(orphaned, issue)
			continue
		}
		columns[i].Issues = append(columns[i].Issues, issue)
	}
	return columns, orphaned
}

// Project собирает доску из прочитанных записей.
func Project(team model.Team, users []model.User, statuses []model.Status, issues []model.Issue) Board {
	SortStatuses(statuses)
	columns, orphaned := Group(statuses, issues)
	return Board{
		Team:     team,
		Users:    users,
		Statuses: statuses,
		Issues:   issues,
		Columns:  columns,
		Orphaned: orphaned,
	}
}

// NeedsMove сообщает, требует ли сброс задачи в колонку target записи.
// Сброс в текущую колонку ничего не меняет.
func NeedsMove(current, target string) bool {
	return target != "" && current != target
}
