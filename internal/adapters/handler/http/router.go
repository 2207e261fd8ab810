package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RouterConfig struct {
	Activities *ActivityHandler
	Options    *OptionHandler
	Votes      *VoteHandler
	Results    *ResultHandler
	Auth       *AuthHandler
	Users      *UserHandler

	AuthMiddleware  func(http.Handler) http.Handler
	AdminMiddleware func(http.Handler) http.Handler
	AllowedOrigins  []string
}

func NewHandler(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	if cfg.Auth != nil {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/google/callback", cfg.Auth.GoogleCallback)
			r.Post("/refresh", cfg.Auth.Refresh)
			r.Post("/logout", cfg.Auth.Logout)
		})
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/activities", cfg.Activities.ListActivities)
		r.Get("/activities/{id}", cfg.Activities.GetActivity)
		r.Get("/activities/{id}/options", cfg.Options.ListOptionsForActivity)

		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthMiddleware)

			r.Post("/votes", cfg.Votes.CastVote)
			r.Get("/votes/{token}", cfg.Votes.GetVote)
			if cfg.Users != nil {
				r.Get("/users/me", cfg.Users.GetMe)
			}

			r.Group(func(r chi.Router) {
				r.Use(cfg.AdminMiddleware)

				r.Post("/activities", cfg.Activities.CreateActivity)
				r.Put("/activities/{id}", cfg.Activities.UpdateActivity)
				r.Delete("/activities/{id}", cfg.Activities.DeleteActivity)
				r.Get("/activities/{id}/results", cfg.Results.GetActivityResults)

				r.Post("/options", cfg.Options.CreateOption)
				r.Put("/options/{id}", cfg.Options.UpdateOption)
				r.Delete("/options/{id}", cfg.Options.DeleteOption)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
