// Command server runs the shiftdesk HTTP API: attendance, daily sales
// and expenses, roster management, and caller profiles, all backed by
// the core service that owns the persistent state.
//
// Exit codes: 0 = clean shutdown, 1 = startup or shutdown error.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shiftdesk/shiftdesk-backend/internal/adapter/coreapi"
	"github.com/shiftdesk/shiftdesk-backend/internal/app"
	"github.com/shiftdesk/shiftdesk-backend/internal/auth"
	"github.com/shiftdesk/shiftdesk-backend/internal/config"
	"github.com/shiftdesk/shiftdesk-backend/internal/readcache"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/attendance"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/dashboard"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/finance"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/profile"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/staff"
	"github.com/shiftdesk/shiftdesk-backend/internal/store"
	"github.com/shiftdesk/shiftdesk-backend/internal/transport/middleware"
	"github.com/shiftdesk/shiftdesk-backend/internal/transport/rest"
	"github.com/shiftdesk/shiftdesk-backend/pkg/money"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting server",
		slog.String("version", app.BuildVersion()),
		slog.String("addr", cfg.Server.HTTPAddress()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	core := coreapi.New(cfg.Core, logger)

	// The server comes up before the core service is reachable; reads
	// resolve empty until the first successful ping flips the ready flag.
	go connectLoop(ctx, core, cfg.Core.ConnectBackoff, logger)

	cache := readcache.New(cfg.Cache.Size, cfg.Cache.TTL)
	st := store.New(core, cache, logger)

	formatter, err := money.NewFormatter(cfg.Money.Locale, cfg.Money.Currency)
	if err != nil {
		logger.Error("money formatter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	staffSvc := staff.NewService(logger, st)
	attendanceSvc := attendance.NewService(logger, st)
	financeSvc := finance.NewService(logger, st)
	profileSvc := profile.NewService(logger, st)
	dashboardSvc := dashboard.NewService(logger, st)

	mux := rest.NewRouter(rest.Handlers{
		Dashboard:  rest.NewDashboardHandler(dashboardSvc, formatter, logger),
		Attendance: rest.NewAttendanceHandler(attendanceSvc, logger),
		Finance:    rest.NewFinanceHandler(financeSvc, formatter, logger),
		Staff:      rest.NewStaffHandler(staffSvc, logger),
		Profile:    rest.NewProfileHandler(profileSvc, logger),
		Health:     rest.NewHealthHandler(core, app.BuildVersion()),
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(jwtManager),
	)(mux)

	srv := &http.Server{
		Addr:         cfg.Server.HTTPAddress(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// connectLoop pings the core service until it answers, then marks the
// client ready. Retries forever on the configured backoff.
func connectLoop(ctx context.Context, core *coreapi.Client, backoff time.Duration, logger *slog.Logger) {
	for {
		err := core.Connect(ctx)
		if err == nil {
			logger.Info("core service connected")
			return
		}
		logger.Warn("core service not reachable, retrying",
			slog.String("error", err.Error()),
			slog.Duration("backoff", backoff),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
	}
}
