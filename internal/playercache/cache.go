package playercache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"picktrack/internal/logging"
	"picktrack/internal/sleeper"
)

// FetchFunc retrieves a fresh player directory from the remote API.
type FetchFunc func(ctx context.Context) (map[string]sleeper.Player, error)

// Store manages the player directory snapshot file.
type Store struct {
	path   string
	ttl    time.Duration
	fetch  FetchFunc
	logger *slog.Logger
	now    func() time.Time
}

// Stats summarizes the snapshot on disk for the cache subcommands.
type Stats struct {
	Path    string        `json:"path"`
	Exists  bool          `json:"exists"`
	Age     time.Duration `json:"age"`
	Fresh   bool          `json:"fresh"`
	Entries int           `json:"entries"`
}

// NewStore creates a snapshot store. fetch may be nil for read-only use
// (stats, clear), in which case Load degrades to the on-disk contents.
func NewStore(path string, ttl time.Duration, fetch FetchFunc, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		ttl:    ttl,
		fetch:  fetch,
		logger: logging.NewComponentLogger(logger, "playercache"),
		now:    time.Now,
	}
}

// Load returns the player directory, using the snapshot when fresh and
// fetching otherwise. A failed fetch falls back to a stale snapshot when one
// parses, and to an empty directory when nothing usable exists; neither case
// is an error so the surrounding run can still complete.
func (s *Store) Load(ctx context.Context) (map[string]sleeper.Player, error) {
	stale, staleOK := s.readSnapshot(true)
	if staleOK && s.fresh() {
		s.logger.Debug("player cache hit",
			logging.String("path", s.path),
			logging.Int("entries", len(stale)))
		return stale, nil
	}

	if s.fetch == nil {
		if staleOK {
			return stale, nil
		}
		return map[string]sleeper.Player{}, nil
	}

	players, err := s.fetch(ctx)
	if err != nil {
		if staleOK {
			s.logger.Warn("player fetch failed, using stale snapshot",
				logging.Error(err),
				logging.Duration("age", s.age()))
			return stale, nil
		}
		s.logger.Warn("player fetch failed, continuing with empty directory",
			logging.Error(err))
		return map[string]sleeper.Player{}, nil
	}

	if err := s.persist(players); err != nil {
		s.logger.Warn("persist player snapshot failed", logging.Error(err))
	}
	return players, nil
}

// Refresh fetches the directory unconditionally and persists the result.
func (s *Store) Refresh(ctx context.Context) (map[string]sleeper.Player, error) {
	if s.fetch == nil {
		return nil, errors.New("refresh requires a fetch function")
	}
	players, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch player directory: %w", err)
	}
	if err := s.persist(players); err != nil {
		return nil, err
	}
	return players, nil
}

// Clear removes the snapshot file. Missing files are not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}

// Stats reports the snapshot's location, freshness, and size.
func (s *Store) Stats() (Stats, error) {
	stats := Stats{Path: s.path}
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return stats, nil
		}
		return stats, fmt.Errorf("stat snapshot: %w", err)
	}
	stats.Exists = true
	stats.Age = s.now().Sub(info.ModTime())
	stats.Fresh = stats.Age < s.ttl
	if players, ok := s.readSnapshot(false); ok {
		stats.Entries = len(players)
	}
	return stats, nil
}

func (s *Store) fresh() bool {
	info, err := os.Stat(s.path)
	if err != nil {
		return false
	}
	return s.now().Sub(info.ModTime()) < s.ttl
}

func (s *Store) age() time.Duration {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0
	}
	return s.now().Sub(info.ModTime())
}

func (s *Store) readSnapshot(logCorrupt bool) (map[string]sleeper.Player, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	var players map[string]sleeper.Player
	if err := json.Unmarshal(data, &players); err != nil {
		if logCorrupt {
			s.logger.Warn("player snapshot corrupted, treating as cache miss",
				logging.String("path", s.path),
				logging.Error(err))
		}
		return nil, false
	}
	return players, true
}

// persist writes the snapshot whole-file via a temp rename so readers never
// observe a partial document. A sibling flock keeps two concurrent refreshes
// from interleaving; a held lock means another run is already writing the
// same data, so losing the race is not an error.
func (s *Store) persist(players map[string]sleeper.Player) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock snapshot: %w", err)
	}
	if !locked {
		s.logger.Debug("snapshot locked by another run, skipping write")
		return nil
	}
	defer lock.Unlock()

	data, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
