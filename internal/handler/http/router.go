package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/oijdod/hrms-backend-go/internal/config"
	"github.com/oijdod/hrms-backend-go/internal/handler/http/middleware"
	"github.com/oijdod/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	salaryHandler SalaryHandler,
	fileHandler FileHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Get("/uploads/*", fileHandler.Serve)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/change-password", authHandler.ChangePassword)
				r.Get("/profile", authHandler.Profile)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Post("/profile-picture", employeeHandler.UploadProfilePicture)
				r.Post("/resume", employeeHandler.UploadResume)
				r.Get("/overview", employeeHandler.ListWithTodayStatus)

				// Own record or Admin/HR, enforced in the service
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Get("/", employeeHandler.List)
					r.Post("/", authHandler.CreateEmployee)
				})

				// Admin only
				r.With(middleware.AdminOnly).Delete("/{id}", employeeHandler.Deactivate)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/me", attendanceHandler.GetMyAttendance)
				r.Get("/summary/{employeeID}", attendanceHandler.Summary)

				// Admin/HR only
				r.With(middleware.AdminOrHR).Get("/", attendanceHandler.List)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/me", leaveHandler.MyLeaves)
				r.Get("/balance", leaveHandler.Balance)
				r.Post("/attachment", leaveHandler.UploadAttachment)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Get("/", leaveHandler.List)
					r.Put("/{id}/review", leaveHandler.Review)
				})
			})

			r.Route("/salaries", func(r chi.Router) {
				// Own structure or Admin/HR, enforced in the service
				r.Get("/{employeeID}", salaryHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", salaryHandler.Save)
					r.Get("/", salaryHandler.List)
					r.Delete("/{employeeID}", salaryHandler.Delete)
					r.Post("/payroll", salaryHandler.CalculatePayroll)
					r.Post("/payslip", salaryHandler.GeneratePayslip)
				})
			})
		})
	})

	return r
}
