package model

import (
	"sort"
	"time"
)

// Backlog определяет очередь, в которой лежит задача.
type Backlog string

const (
	// BacklogSprint — бэклог текущего спринта, именно он отображается на доске.
	BacklogSprint Backlog = "sprint"
	// BacklogProduct — долгосрочный бэклог продукта.
	BacklogProduct Backlog = "product"
)

// Valid сообщает, является ли значение известным бэклогом.
func (b Backlog) Valid() bool {
	return b == BacklogSprint || b == BacklogProduct
}

// Issue описывает задачу команды. Status ссылается на Status.Value колонки той же команды.
type Issue struct {
	ID        string     `json:"id"`
	Summary   string     `json:"summary"`
	Status    string     `json:"status"`
	Backlog   Backlog    `json:"backlog"`
	TeamID    string     `json:"team_id"`
	Estimate  *int       `json:"estimate,omitempty"`
	Type      *string    `json:"type,omitempty"`
	UserID    *string    `json:"user_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// IssueUpdate описывает частичное обновление задачи: nil означает «не менять».
type IssueUpdate struct {
	Summary  *string
	Status   *string
	Backlog  *Backlog
	Estimate *int
	Type     *string
	UserID   *string
}

// Empty сообщает, что обновление не меняет ни одного поля.
func (u IssueUpdate) Empty() bool {
	return u.Summary == nil && u.Status == nil && u.Backlog == nil &&
		u.Estimate == nil && u.Type == nil && u.UserID == nil
}

// Apply применяет обновление к копии задачи.
func (u IssueUpdate) Apply(issue Issue) Issue {
	if u.Summary != nil {
		issue.Summary = *u.Summary
	}
	if u.Status != nil {
		issue.Status = *u.Status
	}
	if u.Backlog != nil {
		issue.Backlog = *u.Backlog
	}
	if u.Estimate != nil {
		v := *u.Estimate
		issue.Estimate = &v
	}
	if u.Type != nil {
		v := *u.Type
		issue.Type = &v
	}
	if u.UserID != nil {
		v := *u.UserID
		issue.UserID = &v
	}
	return issue
}

// SortByEstimate упорядочивает задачи по убыванию оценки, задачи без оценки идут последними.
// Сортировка стабильная: при равных оценках сохраняется исходный порядок.
func SortByEstimate(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Estimate, issues[j].Estimate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})
}

// SortByID упорядочивает задачи по идентификатору (порядок страницы бэклогов).
func SortByID(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].ID < issues[j].ID
	})
}

// Backlogs описывает оба бэклога команды.
type Backlogs struct {
	Sprint  []Issue `json:"sprint"`
	Product []Issue `json:"product"`
}
