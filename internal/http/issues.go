package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"scroom/internal/model"
	"scroom/internal/service"
)

func (h *Handler) handleIssueCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "issue_create"

	var req createIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateCreateIssueRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	in := service.CreateIssueInput{
		Summary:  strings.TrimSpace(req.Summary),
		Status:   req.Status,
		Backlog:  model.Backlog(req.Backlog),
		TeamID:   req.TeamID,
		Estimate: req.Estimate,
		Type:     req.Type,
		UserID:   req.UserID,
	}

	issue, err := h.Issues.CreateIssue(r.Context(), session(r), in)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, issueResponse{Issue: issue})
}

func (h *Handler) handleIssueUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "issue_update"

	id := chi.URLParam(r, "id")
	if err := ValidateID("id", id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req updateIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateUpdateIssueRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	upd := model.IssueUpdate{
		Summary:  req.Summary,
		Status:   req.Status,
		Estimate: req.Estimate,
		Type:     req.Type,
		UserID:   req.UserID,
	}
	if req.Summary != nil {
		summary := strings.TrimSpace(*req.Summary)
		upd.Summary = &summary
	}
	if req.Backlog != nil {
		b := model.Backlog(*req.Backlog)
		upd.Backlog = &b
	}

	issue, err := h.Issues.UpdateIssue(r.Context(), session(r), id, req.TeamID, upd)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, issueResponse{Issue: issue})
}

func (h *Handler) handleIssueDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "issue_delete"

	id := chi.URLParam(r, "id")
	if err := ValidateID("id", id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	issue, err := h.Issues.DeleteIssue(r.Context(), session(r), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, issueResponse{Issue: issue})
}

func (h *Handler) handleBacklogGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "backlog_get"

	backlogs, err := h.Issues.ListBacklogs(r.Context(), session(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, backlogs)
}

func (h *Handler) handleRecentGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "recent_get"

	limit, err := ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	issues, err := h.Issues.RecentIssues(r.Context(), session(r), limit)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, issuesResponse{Issues: issues})
}
