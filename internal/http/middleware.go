package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"scroom/internal/auth"
	"scroom/internal/service"
)

// NewSlogLogger пишет строку журнала на каждый обслуженный запрос.
func NewSlogLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now()

			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(t1).Milliseconds(),
				"bytes_written", ww.BytesWritten(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}
		return http.HandlerFunc(fn)
	}
}

// authenticate проверяет bearer-токен и кладёт сессию в контекст запроса.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const handlerName = "authenticate"

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			h.writeError(w, handlerName, service.ErrUnauthenticated())
			return
		}

		userID, err := h.Tokens.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			appErr := service.ErrUnauthenticated()
			appErr.Err = err
			h.writeError(w, handlerName, appErr)
			return
		}

		sess, err := h.Sessions.Resolve(r.Context(), userID)
		if err != nil {
			h.writeError(w, handlerName, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
	})
}

// rateLimit ограничивает изменяющие запросы пользователя. При недоступном Redis запрос пропускается.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		sess, _ := auth.FromContext(r.Context())
		allowed, count, err := h.limiter.Allow(r.Context(), "user:"+sess.UserID, h.limit, h.window)
		if err != nil {
			h.Log.Warn("rate limiter unavailable", slog.Any("err", err))
			next.ServeHTTP(w, r)
			return
		}

		remaining := h.limit - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(h.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(h.window.Seconds())))
			h.writeError(w, "rate_limit", &service.AppError{
				Code:    "RATE_LIMITED",
				Message: "too many requests",
				Status:  http.StatusTooManyRequests,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// session достаёт сессию, положенную authenticate.
func session(r *http.Request) auth.Session {
	sess, _ := auth.FromContext(r.Context())
	return sess
}
