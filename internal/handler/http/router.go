package http

import (
	"log/slog"
	"os"

	"github.com/garageworks/workshop-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(tokenAuth *jwtauth.JWTAuth, env, frontendURL string, worktimeHandler WorktimeHandler, breakWindowHandler BreakWindowHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workshop-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(tokenAuth))

			r.Route("/worktime", func(r chi.Router) {
				r.Get("/report", worktimeHandler.DayReport)
				r.Get("/report/range", worktimeHandler.RangeReport)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/flagged", worktimeHandler.Flagged)
					r.Post("/clear", worktimeHandler.ClearDay)
					r.Delete("/clear", worktimeHandler.UnclearDay)
				})
			})

			r.Route("/break-windows", func(r chi.Router) {
				r.Get("/", breakWindowHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", breakWindowHandler.Create)
					r.Put("/{id}", breakWindowHandler.Update)
					r.Delete("/{id}", breakWindowHandler.Deactivate)
				})
			})
		})
	})
	return r
}
