package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	domaincompetitions "football-stats-service/internal/domain/competitions"
	"football-stats-service/internal/domain/events"
	"football-stats-service/internal/domain/lineups"
	"football-stats-service/internal/domain/matches"
	"football-stats-service/internal/domain/stats"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/poller"
)

// Path variable names shared with the router.
const (
	VarCompetitionCode = "competition_code"
	VarMatchID         = "match_id"
)

// CompetitionService serves the catalog and per-competition match lists.
type CompetitionService interface {
	Competitions(ctx context.Context) ([]domaincompetitions.Competition, error)
	Matches(ctx context.Context, code string, seasonID int) ([]matches.Match, error)
}

// MatchService serves per-match data.
type MatchService interface {
	Events(ctx context.Context, matchID int) ([]events.Event, error)
	Lineups(ctx context.Context, matchID int) (map[string][]lineups.Player, error)
	PlayerStats(ctx context.Context, matchID int) ([]stats.PlayerStats, error)
	TeamStats(ctx context.Context, matchID int) ([]stats.TeamStats, error)
}

// Handler wires HTTP routes to the services.
type Handler struct {
	competitions  CompetitionService
	matches       MatchService
	defaultSeason int
	logger        *slog.Logger
	statusFn      func() poller.Status
}

// NewHandler constructs a Handler. defaultSeason is used when season_id is omitted.
func NewHandler(comps CompetitionService, matchSvc MatchService, defaultSeason int, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		competitions:  comps,
		matches:       matchSvc,
		defaultSeason: defaultSeason,
		logger:        logger,
		statusFn:      statusFn,
	}
}

// Root identifies the service; it is the only route without the envelope.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "StatsBomb Football API",
		"status":  "running",
	}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeSuccess(w, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness once the competition catalog has loaded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeSuccess(w, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeSuccess(w, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Competitions lists every competition season in the dataset.
func (h *Handler) Competitions(w http.ResponseWriter, r *http.Request) {
	items, err := h.competitions.Competitions(r.Context())
	if err != nil {
		writeFetchError(w, r, err, "competitions not found", h.logger)
		return
	}
	writeSuccess(w, nonNil(items), h.logger)
}

// Matches lists a competition's matches for the requested season.
func (h *Handler) Matches(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)[VarCompetitionCode]
	seasonID := h.defaultSeason
	if raw := strings.TrimSpace(r.URL.Query().Get("season_id")); raw != "" {
		parsed, ok := parsePositiveInt(raw)
		if !ok {
			writeError(w, r, http.StatusBadRequest, "invalid season_id", h.logger)
			return
		}
		seasonID = parsed
	}

	items, err := h.competitions.Matches(r.Context(), code, seasonID)
	if err != nil {
		writeFetchError(w, r, err, fmt.Sprintf("no matches for %s season %d", code, seasonID), h.logger)
		return
	}
	logging.Debug(loggerFromContext(r, h.logger), "served matches",
		logging.FieldCompetition, code,
		logging.FieldSeasonID, seasonID,
		logging.FieldCount, len(items),
	)
	writeSuccess(w, nonNil(items), h.logger)
}

// Events returns the shaped event stream of a match.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	matchID, ok := h.matchID(w, r)
	if !ok {
		return
	}
	items, err := h.matches.Events(r.Context(), matchID)
	if err != nil {
		writeFetchError(w, r, err, matchNotFound(matchID), h.logger)
		return
	}
	writeSuccess(w, nonNil(items), h.logger)
}

// Lineups returns both team sheets keyed by team name.
func (h *Handler) Lineups(w http.ResponseWriter, r *http.Request) {
	matchID, ok := h.matchID(w, r)
	if !ok {
		return
	}
	byTeam, err := h.matches.Lineups(r.Context(), matchID)
	if err != nil {
		writeFetchError(w, r, err, matchNotFound(matchID), h.logger)
		return
	}
	if byTeam == nil {
		byTeam = map[string][]lineups.Player{}
	}
	writeSuccess(w, byTeam, h.logger)
}

// PlayerStats returns per-player aggregates for a match.
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	matchID, ok := h.matchID(w, r)
	if !ok {
		return
	}
	items, err := h.matches.PlayerStats(r.Context(), matchID)
	if err != nil {
		writeFetchError(w, r, err, matchNotFound(matchID), h.logger)
		return
	}
	writeSuccess(w, nonNil(items), h.logger)
}

// TeamStats returns per-team aggregates for a match.
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	matchID, ok := h.matchID(w, r)
	if !ok {
		return
	}
	items, err := h.matches.TeamStats(r.Context(), matchID)
	if err != nil {
		writeFetchError(w, r, err, matchNotFound(matchID), h.logger)
		return
	}
	writeSuccess(w, nonNil(items), h.logger)
}

// NotFound answers unknown routes with the error envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes requested with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) matchID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := parsePositiveInt(mux.Vars(r)[VarMatchID])
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid match_id", h.logger)
		return 0, false
	}
	return id, true
}

func parsePositiveInt(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func matchNotFound(id int) string {
	return fmt.Sprintf("match %d not found", id)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
