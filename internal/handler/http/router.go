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
	"github.com/recursos-humanos/hr-backend-go/internal/handler/http/middleware"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	workSessionHandler WorkSessionHandler,
	earlyDepartureHandler EarlyDepartureHandler,
	scheduleHandler ScheduleHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))

				r.Post("/logout", authHandler.Logout)
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/employee", func(r chi.Router) {
				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", workSessionHandler.GetMySessions)
					r.Post("/start", workSessionHandler.StartWork)
					r.Post("/lunch-start", workSessionHandler.StartLunch)
					r.Post("/lunch-end", workSessionHandler.EndLunch)
					r.Post("/end", workSessionHandler.EndWork)
				})

				r.Route("/early-departure-requests", func(r chi.Router) {
					r.Get("/", earlyDepartureHandler.ListMine)
					r.Post("/", earlyDepartureHandler.Submit)
				})
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", workSessionHandler.List)
					r.Get("/user/{userID}", workSessionHandler.GetUserSessions)
				})

				r.Route("/early-departure-requests", func(r chi.Router) {
					r.Get("/", earlyDepartureHandler.ListAll)
					r.Get("/{requestID}", earlyDepartureHandler.Get)
					r.Put("/{requestID}/approve", earlyDepartureHandler.Approve)
					r.Put("/{requestID}/reject", earlyDepartureHandler.Reject)
					r.Delete("/{requestID}", earlyDepartureHandler.Delete)
				})

				r.Route("/schedules", func(r chi.Router) {
					r.Get("/", scheduleHandler.List)
					r.Post("/", scheduleHandler.Create)
					r.Get("/{scheduleID}", scheduleHandler.Get)
					r.Put("/{scheduleID}", scheduleHandler.Update)
					r.Delete("/{scheduleID}", scheduleHandler.Delete)
				})
			})
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hr-backend up\n"))
	})

	return r
}
