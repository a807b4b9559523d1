package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"scroom/internal/auth"
	"scroom/internal/board"
	"scroom/internal/model"
	"scroom/internal/service"
)

// IssueService — операции над задачами, нужные обработчикам.
type IssueService interface {
	CreateIssue(ctx context.Context, sess auth.Session, in service.CreateIssueInput) (model.Issue, error)
	UpdateIssue(ctx context.Context, sess auth.Session, id, teamID string, upd model.IssueUpdate) (model.Issue, error)
	DeleteIssue(ctx context.Context, sess auth.Session, id string) (model.Issue, error)
	ListBacklogs(ctx context.Context, sess auth.Session) (model.Backlogs, error)
	RecentIssues(ctx context.Context, sess auth.Session, limit int) ([]model.Issue, error)
}

// BoardService — чтение доски и управление колонками.
type BoardService interface {
	GetBoard(ctx context.Context, sess auth.Session) (board.Board, error)
	CreateStatus(ctx context.Context, sess auth.Session, title, value string) (model.Status, error)
	AddColumn(ctx context.Context, sess auth.Session) (model.Status, error)
	DeleteStatus(ctx context.Context, sess auth.Session, id string) (service.DeletedStatus, error)
	MoveIssue(ctx context.Context, sess auth.Session, id, target string) (model.Issue, error)
}

// TeamService — страница команды.
type TeamService interface {
	GetTeam(ctx context.Context, sess auth.Session) (model.TeamPage, error)
	UpdateTeamDetails(ctx context.Context, sess auth.Session, name, projectName string) (model.Team, error)
	ChangeRole(ctx context.Context, sess auth.Session, userID string, role model.Role) (model.User, error)
}

// SessionResolver собирает сессию по идентификатору пользователя из токена.
type SessionResolver interface {
	Resolve(ctx context.Context, userID string) (auth.Session, error)
}

// TokenValidator проверяет bearer-токен и возвращает идентификатор пользователя.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// RateLimiter считает запросы ключа в фиксированном окне.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error)
}

type Handler struct {
	Issues   IssueService
	Board    BoardService
	Teams    TeamService
	Sessions SessionResolver
	Tokens   TokenValidator
	Log      *slog.Logger

	limiter     RateLimiter
	limit       int
	window      time.Duration
	corsOrigins []string
}

func NewHandler(
	issues IssueService,
	boards BoardService,
	teams TeamService,
	sessions SessionResolver,
	tokens TokenValidator,
	log *slog.Logger,
) *Handler {
	return &Handler{
		Issues:   issues,
		Board:    boards,
		Teams:    teams,
		Sessions: sessions,
		Tokens:   tokens,
		Log:      log,
	}
}

// WithRateLimit включает ограничение частоты изменяющих запросов для каждого пользователя.
func (h *Handler) WithRateLimit(l RateLimiter, limit int, window time.Duration) *Handler {
	h.limiter = l
	h.limit = limit
	h.window = window
	return h
}

// WithCORS разрешает браузерной доске обращаться к API с перечисленных origin.
func (h *Handler) WithCORS(origins []string) *Handler {
	h.corsOrigins = origins
	return h
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewSlogLogger(h.Log))
	r.Use(middleware.Recoverer)
	if len(h.corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", h.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/me", h.handleMe)
		r.Get("/board", h.handleBoardGet)
		r.Get("/issues/backlog", h.handleBacklogGet)
		r.Get("/issues/recent", h.handleRecentGet)
		r.Get("/team", h.handleTeamGet)

		r.Group(func(r chi.Router) {
			r.Use(h.rateLimit)

			r.Post("/board/columns", h.handleColumnCreate)
			r.Post("/board/columns/auto", h.handleColumnAdd)
			r.Delete("/board/columns/{id}", h.handleColumnDelete)
			r.Post("/board/move", h.handleIssueMove)

			r.Post("/issues", h.handleIssueCreate)
			r.Patch("/issues/{id}", h.handleIssueUpdate)
			r.Delete("/issues/{id}", h.handleIssueDelete)

			r.Patch("/team", h.handleTeamUpdate)
			r.Patch("/team/users/{id}/role", h.handleRoleChange)
		})
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	resp.Error.Redirect = appErr.Redirect
	writeJSON(w, appErr.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return service.ErrBadRequest("invalid JSON")
	}
	return nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	writeJSON(w, http.StatusOK, meResponse{
		UserID:     sess.UserID,
		Name:       sess.Name,
		TeamID:     sess.TeamID,
		Role:       sess.Role,
		Operations: auth.DefaultPolicy.Operations(sess.Role),
	})
}
