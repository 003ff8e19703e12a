package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pennantbox/pennant/internal/api/handler"
	"github.com/pennantbox/pennant/internal/api/metrics"
	"github.com/pennantbox/pennant/internal/api/middleware"
	"github.com/pennantbox/pennant/internal/auth"
	"github.com/pennantbox/pennant/internal/league"
	"github.com/pennantbox/pennant/internal/season"
	"github.com/pennantbox/pennant/internal/team"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	AuthService *auth.Service
	Leagues     league.Repository
	Teams       team.Repository
	Claims      *team.ClaimService
	Seasons     season.Repository
	Lifecycle   *season.LifecycleService
	DBPinger    handler.DBPinger
	Version     string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(metrics.Middleware)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	leagueHandler := handler.NewLeagueHandler(deps.Leagues)
	teamHandler := handler.NewTeamHandler(deps.Teams, deps.Claims)
	seasonHandler := handler.NewSeasonHandler(deps.Lifecycle, deps.Seasons)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(deps.AuthService))

		r.Route("/leagues", func(r chi.Router) {
			r.Post("/", leagueHandler.Create)
			r.Get("/", leagueHandler.List)
			r.Get("/{leagueId}", leagueHandler.GetByID)
			r.Get("/{leagueId}/teams", teamHandler.List)
			r.Post("/{leagueId}/claims", teamHandler.Claim)
			r.Get("/{leagueId}/seasons", seasonHandler.List)
			r.Post("/{leagueId}/seasons", seasonHandler.Create)
		})
	})

	return r
}
