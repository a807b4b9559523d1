// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"scroom/internal/auth"
	"scroom/internal/model"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

type createIssueRequest struct {
	Summary  string  `json:"summary" validate:"required,notblank,max=500"`
	Status   string  `json:"status" validate:"required"`
	Backlog  string  `json:"backlog" validate:"required,backlog"`
	TeamID   string  `json:"team_id"`
	Estimate *int    `json:"estimate" validate:"omitnil,min=0"`
	Type     *string `json:"type" validate:"omitnil,max=50"`
	UserID   *string `json:"user_id"`
}

type updateIssueRequest struct {
	TeamID   string  `json:"team_id" validate:"required"`
	Summary  *string `json:"summary" validate:"omitnil,notblank,max=500"`
	Status   *string `json:"status" validate:"omitnil,min=1"`
	Backlog  *string `json:"backlog" validate:"omitnil,backlog"`
	Estimate *int    `json:"estimate" validate:"omitnil,min=0"`
	Type     *string `json:"type" validate:"omitnil,max=50"`
	UserID   *string `json:"user_id" validate:"omitnil,min=1"`
}

type issueResponse struct {
	Issue model.Issue `json:"issue"`
}

type issuesResponse struct {
	Issues []model.Issue `json:"issues"`
}

type createStatusRequest struct {
	Title string `json:"title" validate:"required,notblank,max=100"`
	Value string `json:"value" validate:"required,statusvalue,max=64"`
}

type statusResponse struct {
	Status model.Status `json:"status"`
}

type moveIssueRequest struct {
	IssueID string `json:"issue_id" validate:"required,uuid"`
	Status  string `json:"status" validate:"required"`
}

type updateTeamRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	ProjectName string `json:"project_name" validate:"required,notblank"`
}

type teamResponse struct {
	Team model.Team `json:"team"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

type userResponse struct {
	User model.User `json:"user"`
}

type meResponse struct {
	UserID     string           `json:"user_id"`
	Name       string           `json:"name"`
	TeamID     string           `json:"team_id,omitempty"`
	Role       model.Role       `json:"role"`
	Operations []auth.Operation `json:"operations"`
}
