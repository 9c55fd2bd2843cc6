package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups the route handlers mounted under /api/v1.
type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Department  DepartmentHandler
	Designation DesignationHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	Attendance  AttendanceHandler
	Dashboard   DashboardHandler
}

type RouterOptions struct {
	Env            string
	AllowedOrigins []string
	LogLevel       slog.Level
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-admin"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	can := middleware.RequirePermission

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/me", h.Auth.Me)
				r.Put("/me", h.Auth.UpdateMe)
				r.Post("/logout", h.Auth.Logout)
			})

			r.With(can(user.PermissionEmployeesRead)).Get("/dashboard", h.Dashboard.GetDashboard)

			r.Route("/employees", func(r chi.Router) {
				r.With(can(user.PermissionEmployeesRead)).Get("/", h.Employee.ListEmployees)
				r.With(can(user.PermissionEmployeesWrite)).Post("/", h.Employee.CreateEmployee)
				r.With(can(user.PermissionEmployeesRead)).Get("/stats", h.Employee.Stats)
				r.Route("/{id}", func(r chi.Router) {
					r.With(can(user.PermissionEmployeesRead)).Get("/", h.Employee.GetEmployee)
					r.With(can(user.PermissionEmployeesWrite)).Put("/", h.Employee.UpdateEmployee)
					r.With(can(user.PermissionEmployeesWrite)).Delete("/", h.Employee.DeleteEmployee)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.With(can(user.PermissionEmployeesRead)).Get("/", h.Department.List)
				r.With(can(user.PermissionEmployeesWrite)).Post("/", h.Department.Create)
				r.With(can(user.PermissionEmployeesRead)).Get("/stats", h.Department.Stats)
				r.Route("/{id}", func(r chi.Router) {
					r.With(can(user.PermissionEmployeesRead)).Get("/", h.Department.Get)
					r.With(can(user.PermissionEmployeesWrite)).Put("/", h.Department.Update)
					r.With(can(user.PermissionEmployeesWrite)).Delete("/", h.Department.Delete)
				})
			})

			r.Route("/designations", func(r chi.Router) {
				r.With(can(user.PermissionEmployeesRead)).Get("/", h.Designation.List)
				r.With(can(user.PermissionEmployeesWrite)).Post("/", h.Designation.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.With(can(user.PermissionEmployeesRead)).Get("/", h.Designation.Get)
					r.With(can(user.PermissionEmployeesWrite)).Put("/", h.Designation.Update)
					r.With(can(user.PermissionEmployeesWrite)).Delete("/", h.Designation.Delete)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.With(can(user.PermissionLeaveRead)).Get("/dashboard", h.Leave.Dashboard)
				r.Route("/types", func(r chi.Router) {
					r.With(can(user.PermissionLeaveRead)).Get("/", h.Leave.ListTypes)
					r.With(can(user.PermissionLeaveApprove)).Post("/", h.Leave.CreateType)
				})
				r.Route("/requests", func(r chi.Router) {
					r.With(can(user.PermissionLeaveRead)).Get("/", h.Leave.ListRequests)
					r.With(can(user.PermissionLeaveWrite)).Post("/", h.Leave.CreateRequest)
					r.With(can(user.PermissionLeaveApprove)).Post("/{id}/approve", h.Leave.ApproveRequest)
					r.With(can(user.PermissionLeaveApprove)).Post("/{id}/reject", h.Leave.RejectRequest)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.With(can(user.PermissionPayrollRead)).Get("/", h.Payroll.List)
				r.With(can(user.PermissionPayrollRead)).Get("/dashboard", h.Payroll.Dashboard)
				r.With(can(user.PermissionPayrollWrite)).Post("/process", h.Payroll.Process)
				r.With(can(user.PermissionPayrollRead)).Get("/{id}/payslip", h.Payroll.Payslip)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(can(user.PermissionAttendanceRead)).Get("/", h.Attendance.List)
				r.With(can(user.PermissionAttendanceWrite)).Post("/punch-in", h.Attendance.PunchIn)
				r.With(can(user.PermissionAttendanceWrite)).Post("/punch-out", h.Attendance.PunchOut)
				// Manual entries are for supervisors, who can both read and write.
				r.With(can(user.PermissionAttendanceRead), can(user.PermissionAttendanceWrite)).Post("/manual", h.Attendance.MarkManual)
			})
		})
	})
	return r
}
