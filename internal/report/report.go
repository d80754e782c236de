package report

import (
	"fmt"
	"strings"
	"time"

	"picktrack/internal/sleeper"
)

const timestampLayout = "2006-01-02 15:04:05"

// Options controls filtering and rendering.
type Options struct {
	TeamsPerRound         int
	TotalPicks            int
	LowRemainingThreshold int
	Positions             []string
	RoundMarker           bool
	Season                string
}

// DefaultOptions matches the league convention this tool grew up with:
// kickers only, twelve teams, four rounds of rookie picks.
func DefaultOptions() Options {
	return Options{
		TeamsPerRound:         12,
		TotalPicks:            48,
		LowRemainingThreshold: 5,
		Positions:             []string{"K"},
		RoundMarker:           true,
		Season:                "2026",
	}
}

func (o Options) normalized() Options {
	defaults := DefaultOptions()
	if o.TeamsPerRound <= 0 {
		o.TeamsPerRound = defaults.TeamsPerRound
	}
	if o.TotalPicks <= 0 {
		o.TotalPicks = defaults.TotalPicks
	}
	if o.LowRemainingThreshold < 0 {
		o.LowRemainingThreshold = defaults.LowRemainingThreshold
	}
	if len(o.Positions) == 0 {
		o.Positions = defaults.Positions
	}
	if o.Season == "" {
		o.Season = defaults.Season
	}
	return o
}

// FilterPicks keeps picks whose player ID resolves in the directory to one of
// the target positions. The directory is used only for the position check;
// display names stay with the pick's own metadata. Order is preserved.
func FilterPicks(players map[string]sleeper.Player, picks []sleeper.Pick, positions []string) []sleeper.Pick {
	targets := make(map[string]struct{}, len(positions))
	for _, pos := range positions {
		targets[strings.ToUpper(strings.TrimSpace(pos))] = struct{}{}
	}

	qualifying := make([]sleeper.Pick, 0, len(picks))
	for _, pick := range picks {
		player, ok := players[pick.PlayerID]
		if !ok {
			continue
		}
		if _, ok := targets[strings.ToUpper(player.Position)]; ok {
			qualifying = append(qualifying, pick)
		}
	}
	return qualifying
}

// Report is an ordered, append-only sequence of rendered lines.
type Report struct {
	lines     []string
	pickLines int
}

// Lines returns the rendered lines in order.
func (r Report) Lines() []string {
	return r.lines
}

// PickLines reports how many pick entries the report contains.
func (r Report) PickLines() int {
	return r.pickLines
}

// Text joins the report into the final newline-separated document.
func (r Report) Text() string {
	return strings.Join(r.lines, "\n")
}

// Label renders the slot label for the i-th qualifying pick (0-indexed).
func Label(index, teamsPerRound int) string {
	round := index/teamsPerRound + 1
	slot := index%teamsPerRound + 1
	return fmt.Sprintf("%d.%02d", round, slot)
}

// Build renders the report for the given qualifying picks. users maps user IDs
// to display names; unresolved drafters render as "Unknown".
func Build(leagueName string, picks []sleeper.Pick, users map[string]string, now time.Time, opts Options) Report {
	opts = opts.normalized()

	r := Report{lines: []string{
		fmt.Sprintf("**%s Rookie Pick Tracker: %s**", opts.Season, leagueName),
		fmt.Sprintf("*Last Updated: %s*", now.Format(timestampLayout)),
		"---",
	}}

	for i, pick := range picks {
		if i >= opts.TotalPicks {
			break
		}

		username, ok := users[pick.PickedBy]
		if !ok || username == "" {
			username = "Unknown"
		}

		r.lines = append(r.lines, fmt.Sprintf("Pick %s @%s (via %s)",
			Label(i, opts.TeamsPerRound), username, pick.PlayerName()))
		r.pickLines++

		if (i+1)%opts.TeamsPerRound == 0 {
			if opts.RoundMarker {
				r.lines = append(r.lines, fmt.Sprintf("**Round %d is now full.**", i/opts.TeamsPerRound+1))
			}
			r.lines = append(r.lines, "---")
		}
	}
	r.lines = append(r.lines, "")

	remaining := opts.TotalPicks - len(picks)
	switch {
	case remaining > 0 && remaining <= opts.LowRemainingThreshold:
		r.lines = append(r.lines, fmt.Sprintf("**Only %d rookie picks remaining.**", remaining))
	case remaining <= 0:
		rounds := opts.TotalPicks / opts.TeamsPerRound
		r.lines = append(r.lines, fmt.Sprintf("**Rookie draft picking complete: All %d rounds assigned.**", rounds))
	}

	return r
}
