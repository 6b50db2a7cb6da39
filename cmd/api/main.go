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

	"github.com/asistencia-sv/asistencia-backend-go/internal/config"
	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	appHTTP "github.com/asistencia-sv/asistencia-backend-go/internal/handler/http"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/clock"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/cron"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/jwt"
	"github.com/asistencia-sv/asistencia-backend-go/internal/repository/postgresql"
	absenceService "github.com/asistencia-sv/asistencia-backend-go/internal/service/absence"
	attendanceService "github.com/asistencia-sv/asistencia-backend-go/internal/service/attendance"
	serviceAuth "github.com/asistencia-sv/asistencia-backend-go/internal/service/auth"
	consultationService "github.com/asistencia-sv/asistencia-backend-go/internal/service/consultation"
	dailyReportService "github.com/asistencia-sv/asistencia-backend-go/internal/service/dailyreport"
	employeeService "github.com/asistencia-sv/asistencia-backend-go/internal/service/employee"
	reportService "github.com/asistencia-sv/asistencia-backend-go/internal/service/report"
	userService "github.com/asistencia-sv/asistencia-backend-go/internal/service/user"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolSettings{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	clk, err := clock.NewSystemClock(cfg.App.Timezone)
	if err != nil {
		return err
	}

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	reasonRepo := postgresql.NewReasonRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dailyReportRepo := postgresql.NewDailyReportRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	consultationRepo := postgresql.NewConsultationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.App.Env == "production")
	authSvc := serviceAuth.NewAuthService(tx, clk, userRepo, JWTService, JWTRepository)
	userSvc := userService.NewUserService(tx, userRepo, roleRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	reasonSvc := absenceService.NewReasonService(reasonRepo)
	reportSvc := reportService.NewReportService(reportRepo, clk)
	dailyReportSvc := dailyReportService.NewDailyReportService(
		tx,
		clk,
		reportSvc,
		dailyReportRepo,
		employeeRepo,
		reasonRepo,
		dailyReportService.Options{EnforceGateOnWrite: cfg.Attendance.EnforceGateOnWrite},
	)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, clk)
	consultationSvc := consultationService.NewConsultationService(consultationRepo, clk)

	if cfg.Bootstrap.SupervisorUsername != "" {
		if _, err := userSvc.EnsureUser(ctx, cfg.Bootstrap.SupervisorUsername, cfg.Bootstrap.SupervisorPassword, user.RoleSupervisor); err != nil {
			return fmt.Errorf("bootstrap supervisor: %w", err)
		}
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
		},
		JWTService,
		appHTTP.Handlers{
			Auth:          appHTTP.NewAuthHandler(JWTService, authSvc),
			User:          appHTTP.NewUserHandler(userSvc),
			Employee:      appHTTP.NewEmployeeHandler(employeeSvc),
			AbsenceReason: appHTTP.NewAbsenceReasonHandler(reasonSvc),
			Report:        appHTTP.NewReportHandler(reportSvc),
			DailyReport:   appHTTP.NewDailyReportHandler(dailyReportSvc),
			Attendance:    appHTTP.NewAttendanceHandler(attendanceSvc),
			Consultation:  appHTTP.NewConsultationHandler(consultationSvc),
		},
	)

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(authSvc).RegisterJobs(scheduler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Start(gctx)
		<-gctx.Done()
		scheduler.Stop()
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
