package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftly-hq/shiftly-backend-go/internal/handler/http/middleware"
	"github.com/shiftly-hq/shiftly-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	employeeHandler EmployeeHandler,
	templateHandler TemplateHandler,
	shiftHandler ShiftHandler,
	auditHandler AuditHandler,
	allowedOrigins []string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftly-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/companies/my", func(r chi.Router) {
				r.Get("/", companyHandler.Get)
				r.Get("/settings", companyHandler.GetSettings)

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.OwnerOnly)
					r.Put("/", companyHandler.Update)
					r.Patch("/settings", companyHandler.UpdateSettings)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{employeeID}", employeeHandler.Get)

				// Manager and owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{employeeID}", employeeHandler.Update)
					r.Delete("/{employeeID}", employeeHandler.Delete)
				})
			})

			r.Route("/templates", func(r chi.Router) {
				r.Get("/", templateHandler.List)
				r.Get("/{templateID}", templateHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", templateHandler.Create)
					r.Put("/{templateID}", templateHandler.Update)
					r.Delete("/{templateID}", templateHandler.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.List)
				r.Get("/suggestions", shiftHandler.Suggestions)
				r.Get("/{shiftID}", shiftHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Post("/", shiftHandler.Create)
					r.Post("/validate", shiftHandler.Validate)
					r.Post("/bulk", shiftHandler.BulkCreate)
					r.Post("/duplicate", shiftHandler.Duplicate)
					r.Put("/{shiftID}", shiftHandler.Update)
					r.Post("/{shiftID}/confirm", shiftHandler.Confirm)
					r.Delete("/{shiftID}", shiftHandler.Delete)
				})
			})

			r.Route("/audit-logs", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/", auditHandler.List)
			})

			r.Route("/maintenance", func(r chi.Router) {
				r.Use(middleware.OwnerOnly)
				r.Post("/patterns/cleanup", shiftHandler.CleanupPatterns)
			})
		})
	})
	return r
}
