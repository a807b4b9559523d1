package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scroom/internal/auth"
	"scroom/internal/board"
	httpapi "scroom/internal/http"
	"scroom/internal/http/mocks"
	"scroom/internal/model"
	"scroom/internal/service"
)

const (
	goodToken = "good-token"
	issueID   = "6f1c2b7e-3f4a-4b8e-9c1d-2a3b4c5d6e7f"
	statusID  = "0b6a3c1e-9d2f-4e8a-8b7c-1f2e3d4c5b6a"
)

var dev = auth.Session{UserID: "u1", Name: "Dev", TeamID: "t1", Role: model.RoleDeveloper}

type deps struct {
	issues   *mocks.IssueService
	board    *mocks.BoardService
	teams    *mocks.TeamService
	sessions *mocks.SessionResolver
	tokens   *mocks.TokenValidator
}

func newDeps(t *testing.T) deps {
	d := deps{
		issues:   mocks.NewIssueService(t),
		board:    mocks.NewBoardService(t),
		teams:    mocks.NewTeamService(t),
		sessions: mocks.NewSessionResolver(t),
		tokens:   mocks.NewTokenValidator(t),
	}
	d.tokens.On("ValidateToken", goodToken).Return("u1", nil).Maybe()
	d.sessions.On("Resolve", mock.Anything, "u1").Return(dev, nil).Maybe()
	return d
}

func (d deps) handler() *httpapi.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return httpapi.NewHandler(d.issues, d.board, d.teams, d.sessions, d.tokens, logger)
}

func do(h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

type errorEnvelope struct {
	Error struct {
		Code     string `json:"code"`
		Redirect string `json:"redirect"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var e errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestHandler_Health(t *testing.T) {
	w := do(newDeps(t).handler().Router(), http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandler_Authentication(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		setup        func(d deps)
		expectedCode string
		redirect     string
		status       int
	}{
		{
			name:         "missing token",
			setup:        func(d deps) {},
			status:       http.StatusUnauthorized,
			expectedCode: "UNAUTHENTICATED",
			redirect:     service.SignInPath,
		},
		{
			name:  "invalid token",
			token: "forged",
			setup: func(d deps) {
				d.tokens.On("ValidateToken", "forged").Return("", auth.ErrUnauthenticated)
			},
			status:       http.StatusUnauthorized,
			expectedCode: "UNAUTHENTICATED",
			redirect:     service.SignInPath,
		},
		{
			name:  "deleted user",
			token: "stale",
			setup: func(d deps) {
				d.tokens.On("ValidateToken", "stale").Return("u9", nil)
				d.sessions.On("Resolve", mock.Anything, "u9").Return(auth.Session{}, service.ErrUnauthenticated())
			},
			status:       http.StatusUnauthorized,
			expectedCode: "UNAUTHENTICATED",
			redirect:     service.SignInPath,
		},
		{
			name:  "no team yet",
			token: "newcomer",
			setup: func(d deps) {
				sess := auth.Session{UserID: "u7"}
				d.tokens.On("ValidateToken", "newcomer").Return("u7", nil)
				d.sessions.On("Resolve", mock.Anything, "u7").Return(sess, nil)
				d.board.On("GetBoard", mock.Anything, sess).Return(board.Board{}, service.ErrOnboarding())
			},
			status:       http.StatusForbidden,
			expectedCode: "ONBOARDING_REQUIRED",
			redirect:     service.OnboardingPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.setup(d)

			w := do(d.handler().Router(), http.MethodGet, "/board", "", tt.token)

			assert.Equal(t, tt.status, w.Code)
			e := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, e.Error.Code)
			assert.Equal(t, tt.redirect, e.Error.Redirect)
		})
	}
}

func TestHandler_GetBoard(t *testing.T) {
	d := newDeps(t)
	b := board.Project(model.Team{ID: "t1", Name: "core"}, nil,
		[]model.Status{{ID: statusID, Value: "toDo", Title: "To Do", TeamID: "t1"}},
		[]model.Issue{{ID: issueID, Summary: "a", Status: "toDo", TeamID: "t1"}},
	)
	d.board.On("GetBoard", mock.Anything, dev).Return(b, nil)

	w := do(d.handler().Router(), http.MethodGet, "/board", "", goodToken)

	require.Equal(t, http.StatusOK, w.Code)
	var got board.Board
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Columns, 1)
	assert.Equal(t, issueID, got.Columns[0].Issues[0].ID)
}

func TestHandler_CreateIssue(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockBehavior   func(is *mocks.IssueService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"summary":" Login page ","status":"toDo","backlog":"sprint","estimate":3}`,
			mockBehavior: func(is *mocks.IssueService) {
				is.On("CreateIssue", mock.Anything, dev, mock.MatchedBy(func(in service.CreateIssueInput) bool {
					return in.Summary == "Login page" && in.Backlog == model.BacklogSprint && *in.Estimate == 3
				})).Return(model.Issue{ID: issueID, Summary: "Login page"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Bad Request: Invalid JSON",
			body:           `{"summary": "broken`,
			mockBehavior:   func(is *mocks.IssueService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: Unknown field",
			body:           `{"summary":"x","status":"toDo","backlog":"sprint","priority":1}`,
			mockBehavior:   func(is *mocks.IssueService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: Empty summary",
			body:           `{"summary":"  ","status":"toDo","backlog":"sprint"}`,
			mockBehavior:   func(is *mocks.IssueService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: Unknown backlog",
			body:           `{"summary":"x","status":"toDo","backlog":"icebox"}`,
			mockBehavior:   func(is *mocks.IssueService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad Request: Status is not a column",
			body: `{"summary":"x","status":"qa","backlog":"product"}`,
			mockBehavior: func(is *mocks.IssueService) {
				is.On("CreateIssue", mock.Anything, dev, mock.Anything).
					Return(model.Issue{}, service.ErrBadRequest("status qa is not a column of this team"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Forbidden: role",
			body: `{"summary":"x","status":"toDo","backlog":"sprint"}`,
			mockBehavior: func(is *mocks.IssueService) {
				is.On("CreateIssue", mock.Anything, dev, mock.Anything).
					Return(model.Issue{}, service.ErrForbidden("operation not permitted for your role"))
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.mockBehavior(d.issues)

			w := do(d.handler().Router(), http.MethodPost, "/issues", tt.body, goodToken)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandler_UpdateIssue(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		mockBehavior   func(is *mocks.IssueService)
		expectedStatus int
	}{
		{
			name: "Success: status change",
			path: "/issues/" + issueID,
			body: `{"team_id":"t1","status":"done"}`,
			mockBehavior: func(is *mocks.IssueService) {
				is.On("UpdateIssue", mock.Anything, dev, issueID, "t1", mock.MatchedBy(func(u model.IssueUpdate) bool {
					return u.Status != nil && *u.Status == "done" && u.Summary == nil
				})).Return(model.Issue{ID: issueID, Status: "done"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Bad Request: Missing team_id",
			path:           "/issues/" + issueID,
			body:           `{"status":"done"}`,
			mockBehavior:   func(is *mocks.IssueService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad Request: Malformed id",
			path:           "/issues/42",
			body:           `{"team_id":"t1","status":"done"}`,
			mockBehavior:   func(is *mocks.IssueService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Not Found: other team",
			path: "/issues/" + issueID,
			body: `{"team_id":"t2","summary":"x"}`,
			mockBehavior: func(is *mocks.IssueService) {
				is.On("UpdateIssue", mock.Anything, dev, issueID, "t2", mock.Anything).
					Return(model.Issue{}, service.ErrNotFound("issue not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.mockBehavior(d.issues)

			w := do(d.handler().Router(), http.MethodPatch, tt.path, tt.body, goodToken)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandler_DeleteIssue(t *testing.T) {
	d := newDeps(t)
	d.issues.On("DeleteIssue", mock.Anything, dev, issueID).Return(model.Issue{ID: issueID}, nil)

	w := do(d.handler().Router(), http.MethodDelete, "/issues/"+issueID, "", goodToken)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RecentIssues(t *testing.T) {
	d := newDeps(t)
	d.issues.On("RecentIssues", mock.Anything, dev, 0).Return([]model.Issue{{ID: issueID}}, nil)
	h := d.handler().Router()

	w := do(h, http.MethodGet, "/issues/recent", "", goodToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodGet, "/issues/recent?limit=-1", "", goodToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MoveIssue(t *testing.T) {
	d := newDeps(t)
	d.board.On("MoveIssue", mock.Anything, dev, issueID, "inProgress").
		Return(model.Issue{ID: issueID, Status: "inProgress"}, nil)
	h := d.handler().Router()

	w := do(h, http.MethodPost, "/board/move", `{"issue_id":"`+issueID+`","status":"inProgress"}`, goodToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodPost, "/board/move", `{"issue_id":"`+issueID+`","status":""}`, goodToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Columns(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		mockBehavior   func(bs *mocks.BoardService)
		expectedStatus int
	}{
		{
			name:   "Create",
			method: http.MethodPost,
			path:   "/board/columns",
			body:   `{"title":"In Review","value":"inReview"}`,
			mockBehavior: func(bs *mocks.BoardService) {
				bs.On("CreateStatus", mock.Anything, dev, "In Review", "inReview").
					Return(model.Status{ID: statusID, Value: "inReview"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Create: value with spaces",
			method:         http.MethodPost,
			path:           "/board/columns",
			body:           `{"title":"In Review","value":"in review"}`,
			mockBehavior:   func(bs *mocks.BoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Create: duplicate",
			method: http.MethodPost,
			path:   "/board/columns",
			body:   `{"title":"Done","value":"done"}`,
			mockBehavior: func(bs *mocks.BoardService) {
				bs.On("CreateStatus", mock.Anything, dev, "Done", "done").
					Return(model.Status{}, service.ErrDomain("STATUS_EXISTS", "column already exists"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "Add next column",
			method: http.MethodPost,
			path:   "/board/columns/auto",
			mockBehavior: func(bs *mocks.BoardService) {
				bs.On("AddColumn", mock.Anything, dev).Return(model.Status{Value: "column4"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Delete",
			method: http.MethodDelete,
			path:   "/board/columns/" + statusID,
			mockBehavior: func(bs *mocks.BoardService) {
				bs.On("DeleteStatus", mock.Anything, dev, statusID).
					Return(service.DeletedStatus{Status: model.Status{ID: statusID}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.mockBehavior(d.board)

			w := do(d.handler().Router(), tt.method, tt.path, tt.body, goodToken)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandler_Team(t *testing.T) {
	d := newDeps(t)
	d.teams.On("GetTeam", mock.Anything, dev).Return(model.TeamPage{Team: model.Team{ID: "t1"}}, nil)
	d.teams.On("UpdateTeamDetails", mock.Anything, dev, "Gophers", "Scroom").
		Return(model.Team{}, service.ErrForbidden("operation not permitted for your role"))
	d.teams.On("ChangeRole", mock.Anything, dev, "u2", model.RoleScrumMaster).
		Return(model.User{ID: "u2", Role: model.RoleScrumMaster}, nil)
	h := d.handler().Router()

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/team", "", goodToken).Code)
	assert.Equal(t, http.StatusForbidden,
		do(h, http.MethodPatch, "/team", `{"name":"Gophers","project_name":"Scroom"}`, goodToken).Code)
	assert.Equal(t, http.StatusOK,
		do(h, http.MethodPatch, "/team/users/u2/role", `{"role":"scrumMaster"}`, goodToken).Code)
	assert.Equal(t, http.StatusBadRequest,
		do(h, http.MethodPatch, "/team/users/u2/role", `{"role":"owner"}`, goodToken).Code)
}

func TestHandler_RateLimit(t *testing.T) {
	tests := []struct {
		name           string
		allowed        bool
		count          int
		err            error
		expectedStatus int
	}{
		{name: "under limit", allowed: true, count: 1, expectedStatus: http.StatusCreated},
		{name: "over limit", allowed: false, count: 4, expectedStatus: http.StatusTooManyRequests},
		{name: "limiter down", err: errors.New("redis: connection refused"), expectedStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			rl := mocks.NewRateLimiter(t)
			rl.On("Allow", mock.Anything, "user:u1", 3, time.Minute).Return(tt.allowed, tt.count, tt.err)
			if tt.expectedStatus == http.StatusCreated {
				d.board.On("AddColumn", mock.Anything, dev).Return(model.Status{Value: "column4"}, nil)
			}

			h := d.handler().WithRateLimit(rl, 3, time.Minute).Router()
			w := do(h, http.MethodPost, "/board/columns/auto", "", goodToken)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandler_ReadsAreNotRateLimited(t *testing.T) {
	d := newDeps(t)
	rl := mocks.NewRateLimiter(t)
	d.issues.On("ListBacklogs", mock.Anything, dev).Return(model.Backlogs{}, nil)

	w := do(d.handler().WithRateLimit(rl, 1, time.Minute).Router(), http.MethodGet, "/issues/backlog", "", goodToken)

	assert.Equal(t, http.StatusOK, w.Code)
	rl.AssertNotCalled(t, "Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Me(t *testing.T) {
	w := do(newDeps(t).handler().Router(), http.MethodGet, "/me", "", goodToken)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1","name":"Dev","team_id":"t1","role":"developer","operations":["issue:move","issue:update"]}`, w.Body.String())
}
