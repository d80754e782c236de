package scanner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"picktrack/internal/report"
	"picktrack/internal/scanlog"
	"picktrack/internal/sleeper"
)

type fakeClient struct {
	league    *sleeper.League
	leagueErr error
	drafts    []sleeper.Draft
	draftsErr error
	users     []sleeper.User
	usersErr  error
	picks     []sleeper.Pick
	picksErr  error

	pickedDraftID string
}

func (f *fakeClient) League(_ context.Context, _ string) (*sleeper.League, error) {
	return f.league, f.leagueErr
}

func (f *fakeClient) Drafts(_ context.Context, _ string) ([]sleeper.Draft, error) {
	return f.drafts, f.draftsErr
}

func (f *fakeClient) Users(_ context.Context, _ string) ([]sleeper.User, error) {
	return f.users, f.usersErr
}

func (f *fakeClient) Picks(_ context.Context, draftID string) ([]sleeper.Pick, error) {
	f.pickedDraftID = draftID
	return f.picks, f.picksErr
}

type fakePlayers map[string]sleeper.Player

func (f fakePlayers) Load(context.Context) (map[string]sleeper.Player, error) {
	return f, nil
}

func workingClient() *fakeClient {
	return &fakeClient{
		league: &sleeper.League{LeagueID: "L1", Name: "Dynasty Warriors"},
		drafts: []sleeper.Draft{{DraftID: "D-latest"}, {DraftID: "D-older"}},
		users:  []sleeper.User{{UserID: "u1", DisplayName: "Alice"}},
		picks: []sleeper.Pick{
			{PlayerID: "k1", PickedBy: "u1", Metadata: sleeper.PickMetadata{FirstName: "Justin", LastName: "Tucker"}},
			{PlayerID: "qb1", PickedBy: "u1", Metadata: sleeper.PickMetadata{FirstName: "Some", LastName: "Quarterback"}},
		},
	}
}

func directory() fakePlayers {
	return fakePlayers{
		"k1":  {PlayerID: "k1", Position: "K"},
		"qb1": {PlayerID: "qb1", Position: "QB"},
	}
}

func TestRunHappyPath(t *testing.T) {
	client := workingClient()
	logDir := t.TempDir()
	s := New(client, directory(), scanlog.NewWriter(logDir), nil, nil, report.DefaultOptions())

	result, err := s.Run(context.Background(), Request{LeagueID: "L1"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.LeagueName != "Dynasty Warriors" {
		t.Fatalf("unexpected league name %q", result.LeagueName)
	}
	if result.DraftID != "D-latest" || client.pickedDraftID != "D-latest" {
		t.Fatalf("expected most recent draft, got %q", result.DraftID)
	}
	if result.QualifyingPicks != 1 || result.Remaining != 47 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if !strings.Contains(result.ReportText, "Pick 1.01 @Alice (via Justin Tucker)") {
		t.Fatalf("report missing pick line:\n%s", result.ReportText)
	}
	if result.RunID == "" {
		t.Fatal("expected run id")
	}

	data, err := os.ReadFile(result.LogPath)
	if err != nil {
		t.Fatalf("read report log: %v", err)
	}
	if string(data) != result.ReportText+"\n" {
		t.Fatal("log contents do not round-trip the report")
	}
	if filepath.Dir(result.LogPath) != logDir {
		t.Fatalf("log written outside log dir: %q", result.LogPath)
	}
}

func TestRunProvidedDraftIDUsedVerbatim(t *testing.T) {
	client := workingClient()
	client.draftsErr = errors.New("drafts endpoint must not be called")
	s := New(client, directory(), nil, nil, nil, report.DefaultOptions())

	result, err := s.Run(context.Background(), Request{LeagueID: "L1", DraftID: "D-custom"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.DraftID != "D-custom" || client.pickedDraftID != "D-custom" {
		t.Fatalf("draft id not passed through: %+v", result)
	}
}

func TestRunLeagueLookupFailureIsFatal(t *testing.T) {
	client := workingClient()
	client.league = nil
	client.leagueErr = sleeper.ErrNotFound
	s := New(client, directory(), nil, nil, nil, report.DefaultOptions())

	if _, err := s.Run(context.Background(), Request{LeagueID: "bad"}); err == nil {
		t.Fatal("expected fatal error for league lookup failure")
	}
}

func TestRunNoDrafts(t *testing.T) {
	client := workingClient()
	client.drafts = nil
	s := New(client, directory(), nil, nil, nil, report.DefaultOptions())

	_, err := s.Run(context.Background(), Request{LeagueID: "L1"})
	if !errors.Is(err, ErrNoDrafts) {
		t.Fatalf("expected ErrNoDrafts, got %v", err)
	}
}

func TestRunUsersOrPicksFailureIsFatal(t *testing.T) {
	client := workingClient()
	client.usersErr = errors.New("boom")
	s := New(client, directory(), nil, nil, nil, report.DefaultOptions())
	if _, err := s.Run(context.Background(), Request{LeagueID: "L1"}); err == nil {
		t.Fatal("expected fatal error when users fetch fails")
	}

	client = workingClient()
	client.picksErr = errors.New("boom")
	s = New(client, directory(), nil, nil, nil, report.DefaultOptions())
	if _, err := s.Run(context.Background(), Request{LeagueID: "L1"}); err == nil {
		t.Fatal("expected fatal error when picks fetch fails")
	}
}

func TestRunEmptyDirectoryMatchesNothing(t *testing.T) {
	client := workingClient()
	s := New(client, fakePlayers{}, nil, nil, nil, report.DefaultOptions())

	result, err := s.Run(context.Background(), Request{LeagueID: "L1"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.QualifyingPicks != 0 {
		t.Fatalf("empty directory should match nothing, got %d", result.QualifyingPicks)
	}
	if !strings.Contains(result.ReportText, "Rookie Pick Tracker") {
		t.Fatal("report should still render with zero picks")
	}
}

func TestRunNameFallbacks(t *testing.T) {
	client := workingClient()
	client.league = &sleeper.League{LeagueID: "L1"}
	s := New(client, directory(), nil, nil, nil, report.DefaultOptions())

	result, err := s.Run(context.Background(), Request{LeagueID: "L1", NameOverride: "my dynasty league"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.LeagueName != "My Dynasty League" {
		t.Fatalf("expected title-cased override, got %q", result.LeagueName)
	}

	result, err = s.Run(context.Background(), Request{LeagueID: "L1"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.LeagueName != "Sleeper League" {
		t.Fatalf("expected default name, got %q", result.LeagueName)
	}
}

func TestRunPositionOverride(t *testing.T) {
	client := workingClient()
	client.picks = append(client.picks, sleeper.Pick{
		PlayerID: "p1", PickedBy: "u1",
		Metadata: sleeper.PickMetadata{FirstName: "Punt", LastName: "Er"},
	})
	players := directory()
	players["p1"] = sleeper.Player{PlayerID: "p1", Position: "P"}
	s := New(client, players, nil, nil, nil, report.DefaultOptions())

	result, err := s.Run(context.Background(), Request{LeagueID: "L1", Positions: []string{"K", "P"}})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.QualifyingPicks != 2 {
		t.Fatalf("expected kicker and punter to qualify, got %d", result.QualifyingPicks)
	}
}
