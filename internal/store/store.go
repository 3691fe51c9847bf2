// Package store keeps match history in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"discarena/internal/game"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
}

// MatchRow is a finished (or abandoned) match.
type MatchRow struct {
	ID        string
	Level     string
	Seed      uint64
	Over      bool
	PlayerWon bool
	Turns     int
	Frames    int
	Throws    int
	CreatedAt time.Time
}

// MatchDiscRow is one disc's line in a match.
type MatchDiscRow struct {
	MatchID     string
	DiscID      int
	Name        string
	Kind        string
	Type        string
	DamageDealt int
	DamageTaken int
	Absorbed    int
	Kills       int
	Died        bool
}

// KindTotal aggregates every recorded disc of one kind.
type KindTotal struct {
	Kind        string
	Appearances int
	DamageDealt int
	Kills       int
	Deaths      int
}

var ErrNotFound = errors.New("match not found")

// Open opens (or creates) the database at path.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		level TEXT NOT NULL DEFAULT '',
		seed INTEGER NOT NULL DEFAULT 0,
		over INTEGER NOT NULL DEFAULT 0,
		player_won INTEGER NOT NULL DEFAULT 0,
		turns INTEGER NOT NULL DEFAULT 0,
		frames INTEGER NOT NULL DEFAULT 0,
		throws INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS match_discs (
		match_id TEXT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
		disc_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		type TEXT NOT NULL,
		damage_dealt INTEGER NOT NULL DEFAULT 0,
		damage_taken INTEGER NOT NULL DEFAULT 0,
		absorbed INTEGER NOT NULL DEFAULT 0,
		kills INTEGER NOT NULL DEFAULT 0,
		died INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (match_id, disc_id)
	);

	CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at);
	CREATE INDEX IF NOT EXISTS idx_match_discs_kind ON match_discs(kind);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SaveMatch writes a match and its disc lines in one transaction.
func (db *DB) SaveMatch(m MatchRow, discs []MatchDiscRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	_, err = tx.Exec(
		`INSERT INTO matches (id, level, seed, over, player_won, turns, frames, throws, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Level, int64(m.Seed), m.Over, m.PlayerWon, m.Turns, m.Frames, m.Throws, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", m.ID, err)
	}

	for _, d := range discs {
		_, err = tx.Exec(
			`INSERT INTO match_discs (match_id, disc_id, name, kind, type, damage_dealt, damage_taken, absorbed, kills, died)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, d.DiscID, d.Name, d.Kind, d.Type, d.DamageDealt, d.DamageTaken, d.Absorbed, d.Kills, d.Died,
		)
		if err != nil {
			return fmt.Errorf("insert disc %s: %w", d.Name, err)
		}
	}
	return tx.Commit()
}

// Record saves the current state of s under id.
func (db *DB) Record(id, levelName string, s *game.Session) error {
	st := s.Stats()
	over, won := s.Outcome()
	m := MatchRow{
		ID:        id,
		Level:     levelName,
		Seed:      s.Config().Seed,
		Over:      over,
		PlayerWon: won,
		Turns:     st.Turns,
		Frames:    st.Frames,
		Throws:    st.Throws,
	}
	discs := make([]MatchDiscRow, 0, len(st.Discs))
	for _, d := range st.Discs {
		discs = append(discs, MatchDiscRow{
			MatchID:     id,
			DiscID:      d.ID,
			Name:        d.Name,
			Kind:        d.Kind.String(),
			Type:        d.Type.String(),
			DamageDealt: d.DamageDealt,
			DamageTaken: d.DamageTaken,
			Absorbed:    d.Absorbed,
			Kills:       d.Kills,
			Died:        d.Died,
		})
	}
	return db.SaveMatch(m, discs)
}

// RecentMatches returns up to limit matches, newest first.
func (db *DB) RecentMatches(limit int) ([]MatchRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, level, seed, over, player_won, turns, frames, throws, created_at
		 FROM matches ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MatchRow
	for rows.Next() {
		var m MatchRow
		var seed int64
		if err := rows.Scan(&m.ID, &m.Level, &seed, &m.Over, &m.PlayerWon, &m.Turns, &m.Frames, &m.Throws, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Seed = uint64(seed)
		out = append(out, m)
	}
	return out, rows.Err()
}

// MatchDiscs returns the disc lines of one match in disc order.
func (db *DB) MatchDiscs(matchID string) ([]MatchDiscRow, error) {
	var exists int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM matches WHERE id = ?", matchID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, matchID)
	}

	rows, err := db.conn.Query(
		`SELECT match_id, disc_id, name, kind, type, damage_dealt, damage_taken, absorbed, kills, died
		 FROM match_discs WHERE match_id = ? ORDER BY disc_id`,
		matchID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MatchDiscRow
	for rows.Next() {
		var d MatchDiscRow
		if err := rows.Scan(&d.MatchID, &d.DiscID, &d.Name, &d.Kind, &d.Type,
			&d.DamageDealt, &d.DamageTaken, &d.Absorbed, &d.Kills, &d.Died); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// KindTotals sums every recorded disc by kind.
func (db *DB) KindTotals() ([]KindTotal, error) {
	rows, err := db.conn.Query(
		`SELECT kind, COUNT(*), SUM(damage_dealt), SUM(kills), SUM(died)
		 FROM match_discs GROUP BY kind ORDER BY kind`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []KindTotal
	for rows.Next() {
		var k KindTotal
		if err := rows.Scan(&k.Kind, &k.Appearances, &k.DamageDealt, &k.Kills, &k.Deaths); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// WinRate returns the fraction of finished matches the player side won.
func (db *DB) WinRate() (float64, int, error) {
	var finished, won sql.NullInt64
	err := db.conn.QueryRow(
		"SELECT COUNT(*), SUM(player_won) FROM matches WHERE over = 1",
	).Scan(&finished, &won)
	if err != nil {
		return 0, 0, err
	}
	if finished.Int64 == 0 {
		return 0, 0, nil
	}
	return float64(won.Int64) / float64(finished.Int64), int(finished.Int64), nil
}
