package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS scan_runs (
    run_id           TEXT PRIMARY KEY,
    league_id        TEXT NOT NULL,
    league_name      TEXT NOT NULL,
    draft_id         TEXT NOT NULL,
    qualifying_picks INTEGER NOT NULL,
    remaining        INTEGER NOT NULL,
    created_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scan_runs_league ON scan_runs(league_id, created_at);
`

// Run is one recorded scan.
type Run struct {
	RunID           string    `json:"run_id"`
	LeagueID        string    `json:"league_id"`
	LeagueName      string    `json:"league_name"`
	DraftID         string    `json:"draft_id"`
	QualifyingPicks int       `json:"qualifying_picks"`
	Remaining       int       `json:"remaining"`
	CreatedAt       time.Time `json:"created_at"`
}

// Store manages scan history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	keep int
}

// Open initializes or connects to the history database and applies the schema.
// keep bounds the number of retained rows; older rows are pruned on record.
func Open(path string, keep int) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if keep <= 0 {
		keep = 500
	}
	return &Store{db: db, path: path, keep: keep}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts a completed run. A zero RunID or CreatedAt is filled in.
func (s *Store) Record(ctx context.Context, run Run) error {
	if s == nil || s.db == nil {
		return nil
	}
	if strings.TrimSpace(run.RunID) == "" {
		run.RunID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO scan_runs (
            run_id, league_id, league_name, draft_id,
            qualifying_picks, remaining, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.LeagueID,
		run.LeagueName,
		run.DraftID,
		run.QualifyingPicks,
		run.Remaining,
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return s.prune(ctx)
}

// Recent returns runs newest-first, optionally filtered by league ID.
func (s *Store) Recent(ctx context.Context, leagueID string, limit int) ([]Run, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT run_id, league_id, league_name, draft_id,
        qualifying_picks, remaining, created_at
        FROM scan_runs`
	args := []any{}
	if strings.TrimSpace(leagueID) != "" {
		query += " WHERE league_id = ?"
		args = append(args, leagueID)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(
			&run.RunID,
			&run.LeagueID,
			&run.LeagueName,
			&run.DraftID,
			&run.QualifyingPicks,
			&run.Remaining,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			run.CreatedAt = parsed
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func (s *Store) prune(ctx context.Context) error {
	_, err := s.db.ExecContext(
		ctx,
		`DELETE FROM scan_runs WHERE run_id NOT IN (
            SELECT run_id FROM scan_runs ORDER BY created_at DESC LIMIT ?
        )`,
		s.keep,
	)
	if err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return nil
}
