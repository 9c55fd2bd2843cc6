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

	"github.com/cmlabs-hris/hris-admin-go/internal/config"
	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/hris-admin-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/memory"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/hris-admin-go/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With(slog.String("app", "hris-admin"), slog.String("env", cfg.App.Env)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("error creating jwt service: %w", err)
	}

	svcs := service.New(repos, JWTService)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(svcs.Auth),
		Employee:    appHTTP.NewEmployeeHandler(svcs.Employee),
		Department:  appHTTP.NewDepartmentHandler(svcs.Department),
		Designation: appHTTP.NewDesignationHandler(svcs.Designation),
		Leave:       appHTTP.NewLeaveHandler(svcs.Leave),
		Payroll:     appHTTP.NewPayrollHandler(svcs.Payroll),
		Attendance:  appHTTP.NewAttendanceHandler(svcs.Attendance),
		Dashboard:   appHTTP.NewDashboardHandler(svcs.Dashboard),
	}, appHTTP.RouterOptions{
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		LogLevel:       cfg.SlogLevel(),
	})

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		attendanceJobs, err := cron.NewAttendanceJobs(svcs.Attendance, cfg.Cron.AbsenteeCheckAt)
		if err != nil {
			return err
		}
		attendanceJobs.RegisterJobs(scheduler)
		if err := scheduler.Start(ctx); err != nil {
			return fmt.Errorf("error starting cron scheduler: %w", err)
		}
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", "http://localhost"+srv.Addr, "store", cfg.Store.Driver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loadFixtures(cfg *config.Config) (*fixtures.Set, error) {
	if cfg.Store.FixturesPath != "" {
		return fixtures.LoadDir(cfg.Store.FixturesPath, time.Now())
	}
	return fixtures.Load(time.Now())
}

// openStore returns the repositories selected by STORE_DRIVER and a func
// releasing them.
func openStore(ctx context.Context, cfg *config.Config) (repository.Repositories, func(), error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		dsn := cfg.DatabaseURL()
		if cfg.Database.Migrate {
			version, err := database.Migrate(dsn)
			if err != nil {
				return repository.Repositories{}, nil, fmt.Errorf("error migrating database: %w", err)
			}
			slog.Info("Database migrated", "version", version)
		}

		db, err := database.NewPostgreSQLDB(ctx, dsn)
		if err != nil {
			return repository.Repositories{}, nil, fmt.Errorf("error connecting to database: %w", err)
		}

		if cfg.Store.Seed {
			set, err := loadFixtures(cfg)
			if err != nil {
				db.Close()
				return repository.Repositories{}, nil, fmt.Errorf("error loading fixtures: %w", err)
			}
			seeded, err := postgresql.Seed(ctx, db, set)
			if err != nil {
				db.Close()
				return repository.Repositories{}, nil, fmt.Errorf("error seeding database: %w", err)
			}
			slog.Info("Database seed checked", "seeded", seeded)
		}
		return postgresql.New(db), db.Close, nil

	default:
		set, err := loadFixtures(cfg)
		if err != nil {
			return repository.Repositories{}, nil, fmt.Errorf("error loading fixtures: %w", err)
		}
		return memory.New(set), func() {}, nil
	}
}
