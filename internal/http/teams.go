package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"scroom/internal/model"
	"scroom/internal/service"
)

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	page, err := h.Teams.GetTeam(r.Context(), session(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleTeamUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_update"

	var req updateTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateUpdateTeamRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	team, err := h.Teams.UpdateTeamDetails(r.Context(), session(r), req.Name, req.ProjectName)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, teamResponse{Team: team})
}

func (h *Handler) handleRoleChange(w http.ResponseWriter, r *http.Request) {
	const handlerName = "role_change"

	userID := chi.URLParam(r, "id")
	if userID == "" {
		h.writeError(w, handlerName, service.ErrBadRequest("user id is required"))
		return
	}

	var req changeRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateChangeRoleRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	u, err := h.Teams.ChangeRole(r.Context(), session(r), userID, model.Role(req.Role))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: u})
}
