// Package client реализует HTTP-клиент API scroom. Client удовлетворяет board.Mover, поэтому
// контроллер перетаскивания может работать поверх удалённого сервиса.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"scroom/internal/board"
	"scroom/internal/model"
)

// APIError — ошибка, которую вернул сервер.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
	Redirect   string `json:"redirect"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scroom api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateIssueRequest — тело POST /issues.
type CreateIssueRequest struct {
	Summary  string  `json:"summary"`
	Status   string  `json:"status"`
	Backlog  string  `json:"backlog"`
	Estimate *int    `json:"estimate,omitempty"`
	Type     *string `json:"type,omitempty"`
	UserID   *string `json:"user_id,omitempty"`
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) Board(ctx context.Context) (board.Board, error) {
	var b board.Board
	err := c.do(ctx, http.MethodGet, "/board", nil, &b)
	return b, err
}

func (c *Client) CreateIssue(ctx context.Context, req CreateIssueRequest) (model.Issue, error) {
	var resp struct {
		Issue model.Issue `json:"issue"`
	}
	err := c.do(ctx, http.MethodPost, "/issues", req, &resp)
	return resp.Issue, err
}

func (c *Client) DeleteIssue(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/issues/"+url.PathEscape(id), nil, nil)
}

func (c *Client) AddColumn(ctx context.Context) (model.Status, error) {
	var resp struct {
		Status model.Status `json:"status"`
	}
	err := c.do(ctx, http.MethodPost, "/board/columns/auto", nil, &resp)
	return resp.Status, err
}

func (c *Client) DeleteColumn(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/board/columns/"+url.PathEscape(id), nil, nil)
}

// MoveIssue переводит задачу в колонку status через PATCH /issues/{id}.
func (c *Client) MoveIssue(ctx context.Context, issueID, teamID, status string) error {
	body := map[string]string{"team_id": teamID, "status": status}
	return c.do(ctx, http.MethodPatch, "/issues/"+url.PathEscape(issueID), body, nil)
}

var _ board.Mover = (*Client)(nil)

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var env struct {
			Error APIError `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&env)
		env.Error.StatusCode = resp.StatusCode
		return &env.Error
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
