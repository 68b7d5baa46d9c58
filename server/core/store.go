package core

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/splitsecond/splitsecond/shared/score"
)

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	level VARCHAR NOT NULL,
	username VARCHAR NOT NULL,
	time REAL NOT NULL,
	date DATE NOT NULL
);
CREATE INDEX IF NOT EXISTS scores_level ON scores(level);
`

// Store persists scores in sqlite.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the sqlite database at dsn and applies the
// schema. ":memory:" gives a throwaway database.
func OpenStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// An in-memory database lives on a single connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// CreateScore stores a validated submission for level and returns the entry.
func (s *Store) CreateScore(ctx context.Context, level string, req *score.CreateRequest) (*score.Score, error) {
	entry := &score.Score{
		Username: req.Username,
		Time:     req.Time,
		Date:     time.Now().UTC().Truncate(time.Second),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (level, username, time, date) VALUES (?, ?, ?, ?)`,
		level, entry.Username, entry.Time, entry.Date)
	if err != nil {
		return nil, fmt.Errorf("insert score: %w", err)
	}
	return entry, nil
}

// TopScores returns up to limit scores for level, fastest first. Ties go to
// the earlier submission.
func (s *Store) TopScores(ctx context.Context, level string, limit int) ([]*score.Score, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT username, CAST(time AS INTEGER), date FROM scores
		 WHERE level = ? ORDER BY time ASC, date ASC, rowid ASC LIMIT ?`,
		level, limit)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	scores := make([]*score.Score, 0, limit)
	for rows.Next() {
		var sc score.Score
		if err := rows.Scan(&sc.Username, &sc.Time, &sc.Date); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, &sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	return scores, nil
}
