package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"football-stats-service/internal/domain/competitions"
)

const driverName = "postgres"

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS competitions (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		country TEXT NOT NULL DEFAULT '',
		gender TEXT NOT NULL DEFAULT '',
		international BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		country TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id INTEGER PRIMARY KEY,
		competition_id INTEGER NOT NULL,
		season_id INTEGER NOT NULL,
		matchday INTEGER NOT NULL DEFAULT 0,
		date DATE NOT NULL,
		home_team_id INTEGER NOT NULL REFERENCES teams(id),
		away_team_id INTEGER NOT NULL REFERENCES teams(id),
		home_score INTEGER,
		away_score INTEGER,
		status TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(date)`,
	`CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		team_id INTEGER REFERENCES teams(id),
		best_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		worst_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		yellow_cards INTEGER NOT NULL DEFAULT 0,
		red_cards INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS match_player_stats (
		match_id INTEGER NOT NULL REFERENCES matches(id),
		player_id INTEGER NOT NULL REFERENCES players(id),
		minutes INTEGER NOT NULL DEFAULT 0,
		goals INTEGER NOT NULL DEFAULT 0,
		assists INTEGER NOT NULL DEFAULT 0,
		yellow_cards INTEGER NOT NULL DEFAULT 0,
		red_cards INTEGER NOT NULL DEFAULT 0,
		rating DOUBLE PRECISION,
		PRIMARY KEY (match_id, player_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_match_player_stats_player ON match_player_stats(player_id)`,
}

const (
	upsertCompetitionSQL = `
		INSERT INTO competitions (id, name, country, gender, international, updated_at)
		VALUES (:id, :name, :country, :gender, :international, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			gender = EXCLUDED.gender,
			international = EXCLUDED.international,
			updated_at = NOW()`

	upsertTeamSQL = `
		INSERT INTO teams (id, name, country, updated_at)
		VALUES (:id, :name, :country, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			updated_at = NOW()`

	upsertMatchSQL = `
		INSERT INTO matches (id, competition_id, season_id, matchday, date, home_team_id, away_team_id, home_score, away_score, status, updated_at)
		VALUES (:id, :competition_id, :season_id, :matchday, :date, :home_team_id, :away_team_id, :home_score, :away_score, :status, NOW())
		ON CONFLICT (id) DO UPDATE SET
			competition_id = EXCLUDED.competition_id,
			season_id = EXCLUDED.season_id,
			matchday = EXCLUDED.matchday,
			date = EXCLUDED.date,
			home_team_id = EXCLUDED.home_team_id,
			away_team_id = EXCLUDED.away_team_id,
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			status = EXCLUDED.status,
			updated_at = NOW()`

	upsertPlayerSQL = `
		INSERT INTO players (id, name, team_id, updated_at)
		VALUES (:id, :name, :team_id, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			team_id = EXCLUDED.team_id,
			updated_at = NOW()`

	upsertMatchPlayerStatsSQL = `
		INSERT INTO match_player_stats (match_id, player_id, minutes, goals, assists, yellow_cards, red_cards, rating)
		VALUES (:match_id, :player_id, :minutes, :goals, :assists, :yellow_cards, :red_cards, :rating)
		ON CONFLICT (match_id, player_id) DO UPDATE SET
			minutes = EXCLUDED.minutes,
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			yellow_cards = EXCLUDED.yellow_cards,
			red_cards = EXCLUDED.red_cards,
			rating = EXCLUDED.rating`
)

// Team is a row of the teams table.
type Team struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Country string `db:"country"`
}

// Match is a row of the matches table.
type Match struct {
	ID            int       `db:"id"`
	CompetitionID int       `db:"competition_id"`
	SeasonID      int       `db:"season_id"`
	Matchday      int       `db:"matchday"`
	Date          time.Time `db:"date"`
	HomeTeamID    int       `db:"home_team_id"`
	AwayTeamID    int       `db:"away_team_id"`
	HomeScore     *int      `db:"home_score"`
	AwayScore     *int      `db:"away_score"`
	Status        string    `db:"status"`
}

// Player is a row of the players table, without the summary columns.
type Player struct {
	ID     int    `db:"id"`
	Name   string `db:"name"`
	TeamID int    `db:"team_id"`
}

// MatchPlayerStats is one player's line for one match. A nil Rating means the
// dataset published none.
type MatchPlayerStats struct {
	MatchID     int      `db:"match_id"`
	PlayerID    int      `db:"player_id"`
	Minutes     int      `db:"minutes"`
	Goals       int      `db:"goals"`
	Assists     int      `db:"assists"`
	YellowCards int      `db:"yellow_cards"`
	RedCards    int      `db:"red_cards"`
	Rating      *float64 `db:"rating"`
}

// MatchRating is the per-match input to a player summary.
type MatchRating struct {
	MatchID     int             `db:"match_id"`
	Rating      sql.NullFloat64 `db:"rating"`
	YellowCards int             `db:"yellow_cards"`
	RedCards    int             `db:"red_cards"`
}

// PlayerSummary holds the derived columns of the players table.
type PlayerSummary struct {
	BestRating  float64 `db:"best_rating"`
	WorstRating float64 `db:"worst_rating"`
	YellowCards int     `db:"yellow_cards"`
	RedCards    int     `db:"red_cards"`
}

type competitionRow struct {
	ID            int    `db:"id"`
	Name          string `db:"name"`
	Country       string `db:"country"`
	Gender        string `db:"gender"`
	International bool   `db:"international"`
}

// Postgres persists the mirrored dataset.
type Postgres struct {
	db *sqlx.DB
}

// OpenPostgres connects to dsn and verifies the connection.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database url required")
	}
	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return NewPostgres(db), nil
}

// NewPostgres wraps an existing connection pool.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// Migrate creates the schema when missing.
func (p *Postgres) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

// LastMatchDate returns the most recent stored match date; ok is false when no
// match is stored yet.
func (p *Postgres) LastMatchDate(ctx context.Context) (time.Time, bool, error) {
	var last sql.NullTime
	if err := p.db.GetContext(ctx, &last, `SELECT MAX(date) FROM matches`); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read last match date: %w", err)
	}
	if !last.Valid {
		return time.Time{}, false, nil
	}
	return last.Time, true, nil
}

// UpsertCompetitions stores one row per competition id; seasons collapse onto it.
func (p *Postgres) UpsertCompetitions(ctx context.Context, items []competitions.Competition) error {
	seen := make(map[int]struct{}, len(items))
	rows := make([]competitionRow, 0, len(items))
	for _, c := range items {
		if _, ok := seen[c.CompetitionID]; ok {
			continue
		}
		seen[c.CompetitionID] = struct{}{}
		rows = append(rows, competitionRow{
			ID:            c.CompetitionID,
			Name:          c.CompetitionName,
			Country:       c.CountryName,
			Gender:        c.CompetitionGender,
			International: c.CompetitionInternational,
		})
	}
	return upsertAll(ctx, p.db, "competitions", upsertCompetitionSQL, rows)
}

// UpsertTeams inserts or updates teams.
func (p *Postgres) UpsertTeams(ctx context.Context, teams []Team) error {
	return upsertAll(ctx, p.db, "teams", upsertTeamSQL, teams)
}

// UpsertMatch inserts or updates a match.
func (p *Postgres) UpsertMatch(ctx context.Context, m Match) error {
	if _, err := p.db.NamedExecContext(ctx, upsertMatchSQL, m); err != nil {
		return fmt.Errorf("failed to upsert match %d: %w", m.ID, err)
	}
	return nil
}

// UpsertPlayers inserts or updates players; the summary columns are left untouched.
func (p *Postgres) UpsertPlayers(ctx context.Context, players []Player) error {
	return upsertAll(ctx, p.db, "players", upsertPlayerSQL, players)
}

// UpsertMatchPlayerStats inserts or updates per-match player lines.
func (p *Postgres) UpsertMatchPlayerStats(ctx context.Context, lines []MatchPlayerStats) error {
	return upsertAll(ctx, p.db, "match_player_stats", upsertMatchPlayerStatsSQL, lines)
}

// ListPlayerIDs returns every stored player id in ascending order.
func (p *Postgres) ListPlayerIDs(ctx context.Context) ([]int, error) {
	var ids []int
	if err := p.db.SelectContext(ctx, &ids, `SELECT id FROM players ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return ids, nil
}

// PlayerMatchRatings returns the player's per-match rating and card lines.
func (p *Postgres) PlayerMatchRatings(ctx context.Context, playerID int) ([]MatchRating, error) {
	var out []MatchRating
	err := p.db.SelectContext(ctx, &out, `
		SELECT match_id, rating, yellow_cards, red_cards
		FROM match_player_stats
		WHERE player_id = $1
		ORDER BY match_id`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read ratings for player %d: %w", playerID, err)
	}
	return out, nil
}

// UpdatePlayerSummary writes the derived summary columns of one player.
func (p *Postgres) UpdatePlayerSummary(ctx context.Context, playerID int, s PlayerSummary) error {
	_, err := p.db.ExecContext(ctx, `
		UPDATE players SET
			best_rating = $1,
			worst_rating = $2,
			yellow_cards = $3,
			red_cards = $4,
			updated_at = NOW()
		WHERE id = $5`, s.BestRating, s.WorstRating, s.YellowCards, s.RedCards, playerID)
	if err != nil {
		return fmt.Errorf("failed to update summary for player %d: %w", playerID, err)
	}
	return nil
}

// Summarize derives a player summary: best and worst of the positive ratings
// (0 when none) and card totals.
func Summarize(lines []MatchRating) PlayerSummary {
	var (
		out   PlayerSummary
		rated bool
	)
	for _, l := range lines {
		out.YellowCards += l.YellowCards
		out.RedCards += l.RedCards
		if !l.Rating.Valid || l.Rating.Float64 <= 0 {
			continue
		}
		r := l.Rating.Float64
		if !rated {
			out.BestRating, out.WorstRating = r, r
			rated = true
			continue
		}
		if r > out.BestRating {
			out.BestRating = r
		}
		if r < out.WorstRating {
			out.WorstRating = r
		}
	}
	return out
}

// upsertAll runs stmt once per row inside a single transaction.
func upsertAll[T any](ctx context.Context, db *sqlx.DB, table, stmt string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin %s transaction: %w", table, err)
	}
	defer tx.Rollback()

	prepared, err := tx.PrepareNamedContext(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to prepare %s upsert: %w", table, err)
	}
	defer prepared.Close()

	for _, row := range rows {
		if _, err := prepared.ExecContext(ctx, row); err != nil {
			return fmt.Errorf("failed to upsert %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}
