package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/horaria-hr/horaria-backend-go/internal/handler/http/middleware"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	timeEntryHandler TimeEntryHandler,
	employeeHandler EmployeeHandler,
	absenceHandler AbsenceHandler,
	settingsHandler SettingsHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "horaria"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Route("/callback", func(r chi.Router) {
					r.Get("/google", authHandler.OAuthCallbackGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/clock-in", timeEntryHandler.ClockIn)
				r.Post("/clock-out", timeEntryHandler.ClockOut)
				r.Get("/last", timeEntryHandler.GetLast)
				r.Get("/today", timeEntryHandler.GetToday)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", timeEntryHandler.List)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.GetProfile)
				r.Put("/me", employeeHandler.UpdateProfile)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Delete("/{id}", employeeHandler.Deactivate)
					r.Put("/{id}/home-location", employeeHandler.SetHomeLocation)
				})
			})

			r.Route("/absences", func(r chi.Router) {
				r.Post("/", absenceHandler.Request)
				r.Get("/my", absenceHandler.GetMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", absenceHandler.List)
					r.Post("/{id}/approve", absenceHandler.Approve)
					r.Post("/{id}/reject", absenceHandler.Reject)
				})
			})

			// Admin only
			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", settingsHandler.Get)
				r.Put("/office-location", settingsHandler.UpdateOfficeLocation)
			})
		})
	})
	return r
}
