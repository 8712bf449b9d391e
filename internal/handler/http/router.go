package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse/workpulse-backend-go/internal/config"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Shift      ShiftHandler
	Report     ReportHandler
	Insights   InsightsHandler
	Audit      AuditHandler
	Backup     BackupHandler
}

func NewRouter(cfg config.AppConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workpulse"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceSelf)).
					Post("/check-in", h.Attendance.SelfCheckIn)
				r.With(middleware.RequirePermission(user.PermissionAttendanceSelf)).
					Post("/check-out", h.Attendance.SelfCheckOut)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewOwn)).
					Get("/my", h.Attendance.ListMine)

				r.With(middleware.RequirePermission(user.PermissionAttendanceMark)).
					Post("/", h.Attendance.Mark)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).
					Get("/", h.Attendance.List)
				r.With(middleware.RequirePermission(user.PermissionAttendanceExport)).
					Get("/export", h.Report.ExportAttendance)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).
						Get("/", h.Attendance.Get)
					r.With(middleware.RequirePermission(user.PermissionAttendanceEdit)).
						Put("/", h.Attendance.Update)
					r.With(middleware.RequirePermission(user.PermissionAttendanceDelete)).
						Delete("/", h.Attendance.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).
					Get("/", h.Employee.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})

				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).
					Get("/{id}", h.Employee.Get)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).
					Post("/", h.Leave.Request)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).
					Get("/my", h.Leave.ListMine)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).
					Get("/", h.Leave.List)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).
						Get("/", h.Leave.Get)
					r.With(middleware.RequirePermission(user.PermissionLeaveReview)).
						Post("/approve", h.Leave.Approve)
					r.With(middleware.RequirePermission(user.PermissionLeaveReview)).
						Post("/reject", h.Leave.Reject)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionPayrollGenerate)).
					Post("/generate", h.Payroll.Generate)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollViewAll))
					r.Get("/", h.Payroll.List)
					r.Get("/{id}", h.Payroll.Get)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionShiftManage))
				r.Get("/", h.Shift.List)
				r.Post("/", h.Shift.Create)
				r.Post("/assign", h.Shift.Assign)
				r.Get("/assignments", h.Shift.ListAssignments)
				r.Get("/{id}", h.Shift.Get)
				r.Put("/{id}", h.Shift.Update)
				r.Delete("/{id}", h.Shift.Delete)
			})

			r.Route("/insights", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionInsightsView))
				r.Get("/anomalies", h.Insights.DetectAnomalies)
				r.Get("/schedule", h.Insights.SuggestSchedule)
				r.Post("/chat", h.Insights.Chat)
			})

			r.With(middleware.RequirePermission(user.PermissionAuditView)).
				Get("/audit-logs", h.Audit.List)

			// Admin only
			r.Route("/backups", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Backup.Run)
				r.Get("/", h.Backup.List)
			})
		})
	})

	return r
}
