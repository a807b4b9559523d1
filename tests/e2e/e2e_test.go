//go:build e2e

package e2e

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"scroom/internal/board"
	"scroom/internal/client"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Тест ожидает запущенный сервис (например, `scroom serve --memory`) и токен
// администратора команды в SCROOM_TOKEN.
func TestE2E_BoardFlow(t *testing.T) {
	token := os.Getenv("SCROOM_TOKEN")
	if token == "" {
		t.Skip("SCROOM_TOKEN is not set")
	}
	baseURL := env("SCROOM_URL", "http://localhost:8080")
	ctx := context.Background()
	c := client.New(baseURL, token, 5*time.Second)

	waitForService(t, c)

	t.Log("Step 1: Open the board")
	b, err := c.Board(ctx)
	if err != nil {
		t.Fatalf("Step 1 Failed: %v", err)
	}
	if len(b.Statuses) == 0 {
		t.Fatal("Step 1 Failed: board has no columns after the first view")
	}
	t.Logf("Step 1 Success: %d columns", len(b.Statuses))

	t.Log("Step 2: Add a column")
	col, err := c.AddColumn(ctx)
	if err != nil {
		t.Fatalf("Step 2 Failed: %v", err)
	}
	t.Cleanup(func() { _ = c.DeleteColumn(context.Background(), col.ID) })
	t.Logf("Step 2 Success: %s", col.Value)

	t.Log("Step 3: Create an issue")
	first := b.Statuses[0].Value
	estimate := 5
	issue, err := c.CreateIssue(ctx, client.CreateIssueRequest{
		Summary: "e2e drag", Status: first, Backlog: "sprint", Estimate: &estimate,
	})
	if err != nil {
		t.Fatalf("Step 3 Failed: %v", err)
	}
	t.Cleanup(func() { _ = c.DeleteIssue(context.Background(), issue.ID) })

	t.Log("Step 4: Drag the issue into the new column")
	b, err = c.Board(ctx)
	if err != nil {
		t.Fatal(err)
	}
	ctrl := board.NewController(c, b.Team.ID, board.DefaultActivationDistance)
	ctrl.Load(b)

	if _, err := ctrl.Press(issue.ID, 0, 0); err != nil {
		t.Fatal(err)
	}
	ctrl.Move(issue.ID, 0, 40)
	outcome, err := ctrl.Release(ctx, issue.ID, col.Value)
	if err != nil {
		t.Fatalf("Step 4 Failed: %v", err)
	}
	if outcome != board.OutcomeMoved {
		t.Fatalf("Step 4 Failed: expected moved, got %v", outcome)
	}

	b, err = c.Board(ctx)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, column := range b.Columns {
		for _, i := range column.Issues {
			if i.ID == issue.ID && column.Status.Value == col.Value {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("Step 4 Failed: issue %s is not in column %s", issue.ID, col.Value)
	}
	t.Log("Step 4 Success")

	t.Log("Step 5: Requests without a token are rejected")
	err = client.New(baseURL, "", 5*time.Second).MoveIssue(ctx, issue.ID, b.Team.ID, first)
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 401 {
		t.Fatalf("Step 5 Failed: expected 401, got %v", err)
	}
	t.Log("Step 5 Success")
}

func waitForService(t *testing.T, c *client.Client) {
	for i := 0; i < 10; i++ {
		if err := c.Health(context.Background()); err == nil {
			return
		}
		time.Sleep(1 * time.Second)
	}
	t.Fatal("Service is not available")
}
