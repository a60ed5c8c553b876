package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffline/staffline-backend-go/internal/handler/http/middleware"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Company    CompanyHandler
	Master     MasterHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Salary     SalaryHandler
	Payroll    PayrollHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffline"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/company/login", h.Auth.CompanyLogin)
			r.Post("/employee/login", h.Auth.EmployeeLogin)
			r.Post("/admin/login", h.Auth.AdminLogin)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/logout", h.Auth.Logout)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/companies", func(r chi.Router) {

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Company.List)
					r.Post("/", h.Company.Create)
				})

				// Company only
				r.Group(func(r chi.Router) {
					r.Use(middleware.CompanyOnly)
					r.Get("/me", h.Company.GetMe)
					r.Put("/me", h.Company.UpdateMe)
				})
			})

			// Company only
			r.Group(func(r chi.Router) {
				r.Use(middleware.CompanyOnly)

				r.Route("/departments", func(r chi.Router) {
					r.Post("/", h.Master.CreateDepartment)
					r.Get("/", h.Master.ListDepartments)
					r.Put("/{id}", h.Master.UpdateDepartment)
					r.Delete("/{id}", h.Master.DeleteDepartment)
				})

				r.Route("/designations", func(r chi.Router) {
					r.Post("/", h.Master.CreateDesignation)
					r.Get("/", h.Master.ListDesignations)
					r.Put("/{id}", h.Master.UpdateDesignation)
					r.Delete("/{id}", h.Master.DeleteDesignation)
				})

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", h.Employee.Create)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})

				r.Route("/attendance-policy", func(r chi.Router) {
					r.Get("/", h.Attendance.GetPolicy)
					r.Put("/", h.Attendance.UpsertPolicy)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Post("/", h.Attendance.CreateHoliday)
					r.Get("/", h.Attendance.ListHolidays)
					r.Delete("/{id}", h.Attendance.DeleteHoliday)
				})

				r.Route("/leave-policies", func(r chi.Router) {
					r.Post("/", h.Leave.CreatePolicy)
					r.Get("/", h.Leave.ListPolicies)
					r.Put("/{id}", h.Leave.UpdatePolicy)
				})

				r.Route("/salaries", func(r chi.Router) {
					r.Post("/increments", h.Salary.AddIncrement)
					r.Post("/bulk-update", h.Salary.BulkUpdate)
					r.Get("/history", h.Salary.GetCompanyHistory)
					r.Get("/history/{employeeID}", h.Salary.GetEmployeeHistory)
					r.Get("/stats", h.Salary.GetStats)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				// Employee only
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/clock-in", h.Attendance.ClockIn)
					r.Post("/clock-out", h.Attendance.ClockOut)
					r.Get("/status", h.Attendance.GetTodayStatus)
					r.Get("/history", h.Attendance.GetMyHistory)
				})

				// Company only
				r.Group(func(r chi.Router) {
					r.Use(middleware.CompanyOnly)
					r.Get("/daily", h.Attendance.GetCompanyDaily)
					r.Get("/monthly", h.Attendance.GetCompanyMonthly)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				// Employee only
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/", h.Leave.Apply)
					r.Get("/my", h.Leave.GetMyLeaves)
					r.Get("/pending-approvals", h.Leave.GetPendingApprovals)
				})

				r.With(middleware.CompanyOnly).Get("/", h.Leave.GetCompanyLeaves)

				// The owning company or the routed manager; the service
				// checks which one the actor is.
				r.Patch("/{id}/status", h.Leave.UpdateStatus)
			})

			r.Route("/payroll", func(r chi.Router) {
				// Company only
				r.Group(func(r chi.Router) {
					r.Use(middleware.CompanyOnly)
					r.Post("/generate", h.Payroll.Generate)
					r.Get("/payouts", h.Payroll.ListByPeriod)
					r.Patch("/payouts/{id}/status", h.Payroll.MarkPaid)
				})

				r.With(middleware.EmployeeOnly).Get("/payouts/my", h.Payroll.GetMyPayouts)

				// Company actors get any payout in their company,
				// employees only their own.
				r.Get("/payouts/{id}/payslip", h.Payroll.GetPayslip)
			})
		})
	})

	return r
}
