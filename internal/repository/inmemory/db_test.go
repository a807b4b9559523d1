package inmemory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scroom/internal/model"
	"scroom/internal/repository"
	"scroom/internal/repository/inmemory"
)

type testEnvironment struct {
	ctx      context.Context
	storage  *inmemory.Storage
	issues   *inmemory.IssueRepo
	statuses *inmemory.StatusRepo
}

func setup() testEnvironment {
	storage := inmemory.NewStorage()
	storage.AddTeam(model.Team{ID: "t1", Name: "core"})
	storage.AddTeam(model.Team{ID: "t2", Name: "other"})

	return testEnvironment{
		ctx:      context.Background(),
		storage:  storage,
		issues:   inmemory.NewIssueRepo(storage),
		statuses: inmemory.NewStatusRepo(storage),
	}
}

func TestSeedDefaults_Concurrent(t *testing.T) {
	e := setup()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.statuses.SeedDefaults(e.ctx, "t1", model.DefaultColumns)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := e.statuses.ListByTeam(e.ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got, len(model.DefaultColumns))
	for i, c := range model.DefaultColumns {
		assert.Equal(t, c.Value, got[i].Value)
		assert.Equal(t, i, got[i].Position)
	}
}

func TestStatusCreate_AppendsAndRejectsDuplicate(t *testing.T) {
	e := setup()
	_, err := e.statuses.SeedDefaults(e.ctx, "t1", model.DefaultColumns)
	require.NoError(t, err)

	st, err := e.statuses.Create(e.ctx, model.Status{Value: "review", Title: "Review", TeamID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, 3, st.Position)
	assert.NotEmpty(t, st.ID)

	_, err = e.statuses.Create(e.ctx, model.Status{Value: "review", Title: "Again", TeamID: "t1"})
	assert.ErrorIs(t, err, repository.ErrStatusExists)

	// та же колонка в другой команде допустима
	_, err = e.statuses.Create(e.ctx, model.Status{Value: "review", Title: "Review", TeamID: "t2"})
	assert.NoError(t, err)
}

func TestIssueScopedByTeam(t *testing.T) {
	e := setup()
	issue, err := e.issues.Create(e.ctx, model.Issue{Summary: "a", Status: "toDo", Backlog: model.BacklogSprint, TeamID: "t1"})
	require.NoError(t, err)

	_, err = e.issues.GetByID(e.ctx, issue.ID, "t2")
	assert.ErrorIs(t, err, repository.ErrIssueNotFound)

	_, err = e.issues.Delete(e.ctx, issue.ID, "t2")
	assert.ErrorIs(t, err, repository.ErrIssueNotFound)

	deleted, err := e.issues.Delete(e.ctx, issue.ID, "t1")
	require.NoError(t, err)
	assert.Equal(t, issue.ID, deleted.ID)
}

func TestListRecent(t *testing.T) {
	e := setup()
	for _, s := range []string{"first", "second", "third"} {
		_, err := e.issues.Create(e.ctx, model.Issue{Summary: s, Status: "toDo", Backlog: model.BacklogProduct, TeamID: "t1"})
		require.NoError(t, err)
	}

	got, err := e.issues.ListRecent(e.ctx, "t1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "third", got[0].Summary)
	assert.Equal(t, "second", got[1].Summary)
}
