// Package storage keeps the rounds played during this process in an
// in-memory SQLite database. Nothing is written to disk: the log starts
// empty on every launch.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the session database.
type Store struct {
	db *sql.DB
}

// Round is one finished round (Icicles) or session (Drop).
type Round struct {
	ID         int64
	GameID     string
	Difficulty string // empty for games without levels
	Score      int
	Deaths     int
	Caught     int
	EndedAt    time.Time
}

// GameStats aggregates the rounds of one game.
type GameStats struct {
	GameID      string
	Rounds      int
	Best        int
	AvgScore    float64
	TotalDeaths int
	TotalCaught int
	LastPlayed  time.Time
}

// Open creates an empty in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			deaths INTEGER NOT NULL DEFAULT 0,
			caught INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_recent ON rounds(game_id, ended_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The session log is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a round. A zero EndedAt is set to the current time.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: round without game id")
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (game_id, difficulty, score, deaths, caught, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Difficulty, r.Score, r.Deaths, r.Caught, r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRounds retrieves the best N rounds for the given game, highest score
// first. Ties go to the earlier round.
func (s *Store) TopRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, game_id, difficulty, score, deaths, caught, ended_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentRounds retrieves the last N rounds for the given game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, game_id, difficulty, score, deaths, caught, ended_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var endedAt int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Difficulty, &r.Score, &r.Deaths, &r.Caught, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = time.UnixMilli(endedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Best returns the highest score recorded for the given game.
// Returns 0 if no rounds exist.
func (s *Store) Best(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for a specific game.
func (s *Store) Stats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}

	var lastPlayed sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(deaths), 0), COALESCE(SUM(caught), 0), MAX(ended_at)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.Best, &stats.AvgScore, &stats.TotalDeaths, &stats.TotalCaught, &lastPlayed)
	if err != nil {
		return GameStats{}, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if lastPlayed.Valid {
		stats.LastPlayed = time.UnixMilli(lastPlayed.Int64)
	}

	return stats, nil
}
