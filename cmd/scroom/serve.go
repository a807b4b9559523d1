package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"scroom/internal/auth"
	"scroom/internal/config"
	httpapi "scroom/internal/http"
	"scroom/internal/model"
	"scroom/internal/ratelimit"
	"scroom/internal/repository"
	"scroom/internal/repository/inmemory"
	"scroom/internal/service"
)

const (
	connectAttempts = 10
	connectDelay    = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

type stores struct {
	issues   service.IssueRepository
	statuses service.StatusRepository
	teams    service.TeamRepository
	users    service.UserRepository
	tx       service.TransactionManager
	close    func()
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		memory, _ := cmd.Flags().GetBool("memory")
		return serve(cmd.Context(), getCfg(cmd), memory)
	},
}

func init() {
	serveCmd.Flags().Bool("memory", false, "Keep data in process memory with a demo team (no PostgreSQL)")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg config.Config, memory bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := newLogger()
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)

	var (
		st  stores
		err error
	)
	if memory {
		st, err = memoryStores(issuer, logger)
	} else {
		st, err = postgresStores(ctx, cfg, logger)
	}
	if err != nil {
		return err
	}
	defer st.close()

	issueService := service.NewIssueService(st.issues, st.statuses, st.users, st.tx)
	boardService := service.NewBoardService(st.issues, st.statuses, st.teams, st.users, st.tx, logger)
	teamService := service.NewTeamService(st.teams, st.users)
	sessionService := service.NewSessionService(st.users)

	handler := httpapi.NewHandler(issueService, boardService, teamService, sessionService, issuer, logger).
		WithCORS(cfg.CORSOrigins)

	if cfg.RedisURL != "" {
		limiter, err := ratelimit.NewLimiter(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("init rate limiter: %w", err)
		}
		defer limiter.Close()
		handler.WithRateLimit(limiter, cfg.RateLimit, cfg.RateWindow)
		logger.Info("rate limiting enabled",
			slog.Int("limit", cfg.RateLimit),
			slog.Duration("window", cfg.RateWindow),
		)
	}

	server := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
	return nil
}

func postgresStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, error) {
	if cfg.MigrationsAuto {
		if err := repository.Migrate(cfg.DatabaseDSN); err != nil {
			return stores{}, err
		}
		logger.Info("migrations applied")
	}

	db, err := repository.NewRetrier(connectAttempts, connectDelay, repository.NewPostgres).Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		return stores{}, fmt.Errorf("init postgres: %w", err)
	}

	return stores{
		issues:   repository.NewIssueRepo(db),
		statuses: repository.NewStatusRepo(db),
		teams:    repository.NewTeamRepo(db),
		users:    repository.NewUserRepo(db),
		tx:       repository.NewTransactionManager(db),
		close:    db.Pool.Close,
	}, nil
}

func memoryStores(issuer *auth.Issuer, logger *slog.Logger) (stores, error) {
	storage := inmemory.NewStorage()
	storage.AddTeam(
		model.Team{ID: "demo", Name: "Demo team", ProjectName: "Demo project"},
		model.User{ID: "admin", Name: "Admin", Email: "admin@example.com", Role: model.RoleAdmin},
	)

	token, err := issuer.GenerateToken("admin")
	if err != nil {
		return stores{}, err
	}
	logger.Info("in-memory storage with demo team", slog.String("user_id", "admin"), slog.String("token", token))

	return stores{
		issues:   inmemory.NewIssueRepo(storage),
		statuses: inmemory.NewStatusRepo(storage),
		teams:    inmemory.NewTeamRepo(storage),
		users:    inmemory.NewUserRepo(storage),
		tx:       inmemory.NewTransactionManager(),
		close:    func() {},
	}, nil
}
