package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleBoardGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "board_get"

	b, err := h.Board.GetBoard(r.Context(), session(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleColumnCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "column_create"

	var req createStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateCreateStatusRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	st, err := h.Board.CreateStatus(r.Context(), session(r), strings.TrimSpace(req.Title), req.Value)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, statusResponse{Status: st})
}

func (h *Handler) handleColumnAdd(w http.ResponseWriter, r *http.Request) {
	const handlerName = "column_add"

	st, err := h.Board.AddColumn(r.Context(), session(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, statusResponse{Status: st})
}

func (h *Handler) handleColumnDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "column_delete"

	id := chi.URLParam(r, "id")
	if err := ValidateID("id", id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	res, err := h.Board.DeleteStatus(r.Context(), session(r), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleIssueMove(w http.ResponseWriter, r *http.Request) {
	const handlerName = "issue_move"

	var req moveIssueRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateMoveIssueRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	issue, err := h.Board.MoveIssue(r.Context(), session(r), req.IssueID, req.Status)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, issueResponse{Issue: issue})
}
