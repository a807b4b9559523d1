package client_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroom/internal/auth"
	"scroom/internal/board"
	"scroom/internal/client"
	httpapi "scroom/internal/http"
	"scroom/internal/model"
	"scroom/internal/repository/inmemory"
	"scroom/internal/service"
)

func newServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	storage := inmemory.NewStorage()
	storage.AddTeam(model.Team{ID: "t1", Name: "core", ProjectName: "scroom"},
		model.User{ID: "u1", Name: "Olga", Role: model.RoleProductOwner},
	)
	issues := inmemory.NewIssueRepo(storage)
	statuses := inmemory.NewStatusRepo(storage)
	teams := inmemory.NewTeamRepo(storage)
	users := inmemory.NewUserRepo(storage)
	tx := inmemory.NewTransactionManager()
	issuer := auth.NewIssuer("test-secret", time.Hour)

	h := httpapi.NewHandler(
		service.NewIssueService(issues, statuses, users, tx),
		service.NewBoardService(issues, statuses, teams, users, tx, logger),
		service.NewTeamService(teams, users),
		service.NewSessionService(users),
		issuer,
		logger,
	)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)

	token, err := issuer.GenerateToken("u1")
	require.NoError(t, err)
	return srv, token
}

func TestClient_DragAcrossColumns(t *testing.T) {
	srv, token := newServer(t)
	ctx := context.Background()
	c := client.New(srv.URL, token, 5*time.Second)

	b, err := c.Board(ctx)
	require.NoError(t, err)
	require.Len(t, b.Statuses, 3)

	issue, err := c.CreateIssue(ctx, client.CreateIssueRequest{Summary: "drag me", Status: "toDo", Backlog: "sprint"})
	require.NoError(t, err)

	b, err = c.Board(ctx)
	require.NoError(t, err)

	ctrl := board.NewController(c, "t1", board.DefaultActivationDistance)
	ctrl.Load(b)

	_, err = ctrl.Press(issue.ID, 0, 0)
	require.NoError(t, err)
	ctrl.Move(issue.ID, 30, 0)
	outcome, err := ctrl.Release(ctx, issue.ID, "inProgress")
	require.NoError(t, err)
	assert.Equal(t, board.OutcomeMoved, outcome)

	b, err = c.Board(ctx)
	require.NoError(t, err)
	require.Len(t, b.Columns[1].Issues, 1)
	assert.Equal(t, issue.ID, b.Columns[1].Issues[0].ID)
}

func TestClient_Errors(t *testing.T) {
	srv, _ := newServer(t)
	ctx := context.Background()

	err := client.New(srv.URL, "", time.Second).MoveIssue(ctx, "6f1c2b7e-3f4a-4b8e-9c1d-2a3b4c5d6e7f", "t1", "done")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, service.SignInPath, apiErr.Redirect)

	assert.NoError(t, client.New(srv.URL, "", time.Second).Health(ctx))
}
