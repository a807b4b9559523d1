package board_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scroom/internal/board"
	"scroom/internal/model"
)

type moverMock struct {
	mock.Mock
}

func (m *moverMock) MoveIssue(ctx context.Context, issueID, teamID, status string) error {
	args := m.Called(ctx, issueID, teamID, status)
	return args.Error(0)
}

func newController(t *testing.T, mover board.Mover) *board.Controller {
	t.Helper()
	c := board.NewController(mover, "t1", 0)
	c.Load(board.Board{Issues: []model.Issue{
		{ID: "i1", Status: "toDo"},
		{ID: "i2", Status: "done"},
	}})
	return c
}

func drag(t *testing.T, c *board.Controller, issueID string) {
	t.Helper()
	started, err := c.Press(issueID, 100, 100)
	require.NoError(t, err)
	require.True(t, started)
	require.Equal(t, board.StateDragging, c.Move(issueID, 100, 115))
}

func TestController_DropOnOtherColumn(t *testing.T) {
	mover := new(moverMock)
	mover.On("MoveIssue", mock.Anything, "i1", "t1", "inProgress").Return(nil).Once()
	c := newController(t, mover)

	drag(t, c, "i1")
	out, err := c.Release(context.Background(), "i1", "inProgress")

	require.NoError(t, err)
	assert.Equal(t, board.OutcomeMoved, out)
	st, _ := c.Status("i1")
	assert.Equal(t, "inProgress", st)
	assert.Equal(t, board.StateIdle, c.State("i1"))
	mover.AssertExpectations(t)
}

func TestController_DropOnSameColumnIsNoop(t *testing.T) {
	mover := new(moverMock)
	c := newController(t, mover)

	drag(t, c, "i1")
	out, err := c.Release(context.Background(), "i1", "toDo")

	require.NoError(t, err)
	assert.Equal(t, board.OutcomeNoop, out)
	st, _ := c.Status("i1")
	assert.Equal(t, "toDo", st)
	mover.AssertNotCalled(t, "MoveIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestController_ClickBelowActivationDistance(t *testing.T) {
	mover := new(moverMock)
	c := newController(t, mover)

	_, err := c.Press("i1", 0, 0)
	require.NoError(t, err)
	// ровно 10 px — ещё клик
	assert.Equal(t, board.StateIdle, c.Move("i1", 6, 8))

	out, err := c.Release(context.Background(), "i1", "done")
	require.NoError(t, err)
	assert.Equal(t, board.OutcomeClick, out)
	mover.AssertNotCalled(t, "MoveIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestController_CustomActivationDistance(t *testing.T) {
	c := board.NewController(new(moverMock), "t1", 50)
	c.Load(board.Board{Issues: []model.Issue{{ID: "i1", Status: "toDo"}}})

	_, err := c.Press("i1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, board.StateIdle, c.Move("i1", 30, 30))
	assert.Equal(t, board.StateDragging, c.Move("i1", 40, 40))
}

func TestController_ReleaseOutsideColumns(t *testing.T) {
	mover := new(moverMock)
	c := newController(t, mover)

	drag(t, c, "i1")
	out, err := c.Release(context.Background(), "i1", "")

	require.NoError(t, err)
	assert.Equal(t, board.OutcomeCancelled, out)
	mover.AssertNotCalled(t, "MoveIssue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestController_MoverError(t *testing.T) {
	mover := new(moverMock)
	mover.On("MoveIssue", mock.Anything, "i1", "t1", "done").Return(errors.New("boom"))
	c := newController(t, mover)

	drag(t, c, "i1")
	out, err := c.Release(context.Background(), "i1", "done")

	assert.Error(t, err)
	assert.Equal(t, board.OutcomeCancelled, out)
	st, _ := c.Status("i1")
	assert.Equal(t, "toDo", st)
	assert.Equal(t, board.StateIdle, c.State("i1"))
}

func TestController_OneGesturePerIssue(t *testing.T) {
	c := newController(t, new(moverMock))

	started, err := c.Press("i1", 0, 0)
	require.NoError(t, err)
	assert.True(t, started)

	again, err := c.Press("i1", 5, 5)
	require.NoError(t, err)
	assert.False(t, again, "gesture in flight blocks a new one on the same issue")

	other, err := c.Press("i2", 0, 0)
	require.NoError(t, err)
	assert.True(t, other, "other issues are independent")

	c.Cancel("i1")
	restarted, err := c.Press("i1", 0, 0)
	require.NoError(t, err)
	assert.True(t, restarted)
}

func TestController_UnknownIssue(t *testing.T) {
	c := newController(t, new(moverMock))

	_, err := c.Press("missing", 0, 0)
	assert.ErrorIs(t, err, board.ErrUnknownIssue)

	out, err := c.Release(context.Background(), "missing", "done")
	require.NoError(t, err)
	assert.Equal(t, board.OutcomeIgnored, out)
}
