package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"football-stats-service/internal/http/handlers"
)

const apiPrefix = "/api/statsbomb"

// NewRouter registers the read-only routes and wraps them with CORS.
// An empty origins list allows every origin.
func NewRouter(handler *handlers.Handler, origins []string) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	r.HandleFunc("/", handler.Root).Methods(nethttp.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)

	api := r.PathPrefix(apiPrefix).Subrouter()
	api.HandleFunc("/competitions", handler.Competitions).Methods(nethttp.MethodGet)
	api.HandleFunc("/matches/{"+handlers.VarCompetitionCode+"}", handler.Matches).Methods(nethttp.MethodGet)
	api.HandleFunc("/events/{"+handlers.VarMatchID+"}", handler.Events).Methods(nethttp.MethodGet)
	api.HandleFunc("/lineups/{"+handlers.VarMatchID+"}", handler.Lineups).Methods(nethttp.MethodGet)
	api.HandleFunc("/player-stats/{"+handlers.VarMatchID+"}", handler.PlayerStats).Methods(nethttp.MethodGet)
	api.HandleFunc("/team-stats/{"+handlers.VarMatchID+"}", handler.TeamStats).Methods(nethttp.MethodGet)

	return newCORS(origins).Handler(r)
}

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{nethttp.MethodGet, nethttp.MethodHead, nethttp.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
	})
}
