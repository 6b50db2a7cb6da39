package http

import (
	"log/slog"
	"os"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/handler/http/middleware"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
}

type Handlers struct {
	Auth          AuthHandler
	User          UserHandler
	Employee      EmployeeHandler
	AbsenceReason AbsenceReasonHandler
	Report        ReportHandler
	DailyReport   DailyReportHandler
	Attendance    AttendanceHandler
	Consultation  ConsultationHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "asistencia-backend"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Get("/auth/me", h.Auth.Me)
			r.Get("/attendance/stats", h.Attendance.Stats)
			r.Get("/roles", h.User.ListRoles)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)
				r.Get("/departments", h.Employee.ListDepartments)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Put("/{id}", h.Employee.UpdateEmployee)
				r.Delete("/{id}", h.Employee.DeleteEmployee)
			})

			r.Route("/absence-reasons", func(r chi.Router) {
				r.Get("/", h.AbsenceReason.List)
				r.Post("/", h.AbsenceReason.Create)
				r.Get("/{id}", h.AbsenceReason.Get)
				r.Put("/{id}", h.AbsenceReason.Update)
				r.Delete("/{id}", h.AbsenceReason.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", h.Report.List)
				r.Post("/", h.Report.Generate)
				r.Get("/status", h.Report.Status)
				r.Get("/{id}", h.Report.Get)
				r.Patch("/{id}", h.Report.SetState)
				r.Delete("/{id}", h.Report.Delete)
			})

			r.Route("/daily-reports", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionDailyReportView)).Get("/", h.DailyReport.List)
				r.With(middleware.RequirePermission(user.PermissionDailyReportCreate)).Post("/", h.DailyReport.Create)
				r.With(middleware.RequirePermission(user.PermissionDailyReportCreate)).Post("/bulk", h.DailyReport.BulkSave)
				r.With(middleware.RequirePermission(user.PermissionDailyReportUpdate)).Put("/{id}", h.DailyReport.Update)
				r.With(middleware.RequirePermission(user.PermissionDailyReportDelete)).Delete("/{id}", h.DailyReport.Delete)
			})

			r.Route("/consultations", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionConsultationView))
				r.Get("/", h.Consultation.Query)
				r.Get("/export", h.Consultation.Export)
			})
		})
	})
	return r
}
