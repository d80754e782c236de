package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T, keep int) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"), keep)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t, 10)
	ctx := context.Background()

	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := store.Record(ctx, Run{
			LeagueID:        "league-1",
			LeagueName:      "Dynasty Warriors",
			DraftID:         fmt.Sprintf("draft-%d", i),
			QualifyingPicks: 10 + i,
			Remaining:       38 - i,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}

	runs, err := store.Recent(ctx, "", 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].DraftID != "draft-2" {
		t.Fatalf("expected newest first, got %+v", runs[0])
	}
	if runs[0].RunID == "" {
		t.Fatal("expected generated run id")
	}
	if runs[0].QualifyingPicks != 12 || runs[0].Remaining != 36 {
		t.Fatalf("unexpected counts: %+v", runs[0])
	}
}

func TestRecentLeagueFilterAndLimit(t *testing.T) {
	store := openTestStore(t, 10)
	ctx := context.Background()

	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		league := "league-a"
		if i%2 == 1 {
			league = "league-b"
		}
		err := store.Record(ctx, Run{
			LeagueID:  league,
			DraftID:   fmt.Sprintf("draft-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}

	runs, err := store.Recent(ctx, "league-a", 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 league-a runs, got %d", len(runs))
	}
	for _, run := range runs {
		if run.LeagueID != "league-a" {
			t.Fatalf("filter leaked run %+v", run)
		}
	}

	runs, err = store.Recent(ctx, "", 1)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(runs) != 1 || runs[0].DraftID != "draft-3" {
		t.Fatalf("limit/order wrong: %+v", runs)
	}
}

func TestRecordPrunesBeyondKeep(t *testing.T) {
	store := openTestStore(t, 2)
	ctx := context.Background()

	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := store.Record(ctx, Run{
			LeagueID:  "league-1",
			DraftID:   fmt.Sprintf("draft-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}

	runs, err := store.Recent(ctx, "", 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected prune to keep 2 runs, got %d", len(runs))
	}
	if runs[0].DraftID != "draft-4" || runs[1].DraftID != "draft-3" {
		t.Fatalf("prune kept wrong rows: %+v", runs)
	}
}

func TestNilStoreIsNoop(t *testing.T) {
	var store *Store
	if err := store.Record(context.Background(), Run{LeagueID: "x"}); err != nil {
		t.Fatalf("nil store Record errored: %v", err)
	}
	runs, err := store.Recent(context.Background(), "", 5)
	if err != nil || runs != nil {
		t.Fatalf("nil store Recent = %v, %v", runs, err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("nil store Close errored: %v", err)
	}
}
