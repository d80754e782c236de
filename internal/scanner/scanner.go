// Package scanner ties the pipeline together: resolve the league and draft,
// load the player directory, fetch users and picks, filter and render the
// report, then append it to the league log and record the run.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"picktrack/internal/history"
	"picktrack/internal/logging"
	"picktrack/internal/report"
	"picktrack/internal/scanlog"
	"picktrack/internal/sleeper"
	"picktrack/internal/textutil"
)

// APIClient is the slice of the Sleeper client the scanner depends on.
type APIClient interface {
	League(ctx context.Context, leagueID string) (*sleeper.League, error)
	Drafts(ctx context.Context, leagueID string) ([]sleeper.Draft, error)
	Users(ctx context.Context, leagueID string) ([]sleeper.User, error)
	Picks(ctx context.Context, draftID string) ([]sleeper.Pick, error)
}

// PlayerSource supplies the player directory, typically the cache store.
type PlayerSource interface {
	Load(ctx context.Context) (map[string]sleeper.Player, error)
}

// ErrNoDrafts is returned when a league has no drafts to resolve.
var ErrNoDrafts = errors.New("no drafts found for league")

// Request describes one scan invocation.
type Request struct {
	LeagueID      string
	DraftID       string
	NameOverride  string
	TeamsPerRound int
	Positions     []string
}

// Result carries everything the CLI needs to present a completed scan.
type Result struct {
	RunID           string `json:"run_id"`
	LeagueID        string `json:"league_id"`
	LeagueName      string `json:"league_name"`
	DraftID         string `json:"draft_id"`
	QualifyingPicks int    `json:"qualifying_picks"`
	Remaining       int    `json:"remaining"`
	ReportText      string `json:"report_text"`
	LogPath         string `json:"log_path"`
}

// Scanner runs the scan pipeline.
type Scanner struct {
	client  APIClient
	players PlayerSource
	logFile *scanlog.Writer
	history *history.Store
	logger  *slog.Logger
	opts    report.Options
	now     func() time.Time
}

// New assembles a scanner. history may be nil (disabled); logFile may be nil
// to skip the report log (used by --no-log style callers and tests).
func New(client APIClient, players PlayerSource, logFile *scanlog.Writer, hist *history.Store, logger *slog.Logger, opts report.Options) *Scanner {
	return &Scanner{
		client:  client,
		players: players,
		logFile: logFile,
		history: hist,
		logger:  logging.NewComponentLogger(logger, "scanner"),
		opts:    opts,
		now:     time.Now,
	}
}

// Run executes the pipeline. League, users, and picks fetch failures are
// fatal; player directory and history failures degrade. A report-log write
// failure returns both the populated Result and the error so the caller can
// still show the report.
func (s *Scanner) Run(ctx context.Context, req Request) (*Result, error) {
	league, err := s.client.League(ctx, req.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("could not find league %s: %w", req.LeagueID, err)
	}

	leagueName := league.Name
	if leagueName == "" {
		leagueName = textutil.FallbackTitle(req.NameOverride)
	}
	if leagueName == "" {
		leagueName = "Sleeper League"
	}

	draftID, err := s.resolveDraft(ctx, req.LeagueID, req.DraftID)
	if err != nil {
		return nil, err
	}

	players, err := s.players.Load(ctx)
	if err != nil {
		// Load degrades internally; an error here is unexpected but non-fatal.
		s.logger.Warn("player directory load failed", logging.Error(err))
		players = map[string]sleeper.Player{}
	}

	users, err := s.client.Users(ctx, req.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("retrieve league users: %w", err)
	}
	picks, err := s.client.Picks(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("retrieve draft picks: %w", err)
	}

	userNames := make(map[string]string, len(users))
	for _, user := range users {
		userNames[user.UserID] = user.DisplayName
	}

	opts := s.opts
	if req.TeamsPerRound > 0 {
		opts.TeamsPerRound = req.TeamsPerRound
	}
	if len(req.Positions) > 0 {
		opts.Positions = req.Positions
	}

	qualifying := report.FilterPicks(players, picks, opts.Positions)
	rendered := report.Build(leagueName, qualifying, userNames, s.now(), opts)

	result := &Result{
		RunID:           uuid.NewString(),
		LeagueID:        req.LeagueID,
		LeagueName:      leagueName,
		DraftID:         draftID,
		QualifyingPicks: len(qualifying),
		Remaining:       opts.TotalPicks - len(qualifying),
		ReportText:      rendered.Text(),
	}

	s.logger.Info("scan complete",
		logging.String("run_id", result.RunID),
		logging.String("league_id", result.LeagueID),
		logging.String("draft_id", result.DraftID),
		logging.Int("qualifying_picks", result.QualifyingPicks))

	var appendErr error
	if s.logFile != nil {
		result.LogPath, appendErr = s.logFile.Append(leagueName, req.LeagueID, result.ReportText)
		if appendErr != nil {
			appendErr = fmt.Errorf("append report log: %w", appendErr)
		}
	}

	s.recordHistory(ctx, result)

	return result, appendErr
}

func (s *Scanner) resolveDraft(ctx context.Context, leagueID, draftID string) (string, error) {
	if draftID != "" {
		// Provided IDs are trusted verbatim; a bad one surfaces at pick fetch.
		return draftID, nil
	}
	drafts, err := s.client.Drafts(ctx, leagueID)
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", ErrNoDrafts, leagueID, err)
	}
	if len(drafts) == 0 || drafts[0].DraftID == "" {
		return "", fmt.Errorf("%w %s", ErrNoDrafts, leagueID)
	}
	return drafts[0].DraftID, nil
}

func (s *Scanner) recordHistory(ctx context.Context, result *Result) {
	err := s.history.Record(ctx, history.Run{
		RunID:           result.RunID,
		LeagueID:        result.LeagueID,
		LeagueName:      result.LeagueName,
		DraftID:         result.DraftID,
		QualifyingPicks: result.QualifyingPicks,
		Remaining:       result.Remaining,
	})
	if err != nil {
		s.logger.Warn("record scan history failed", logging.Error(err))
	}
}
