package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"picktrack/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var leagueID string
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scans",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Scan history is disabled in the configuration.")
				return nil
			}

			store, err := history.Open(cfg.HistoryFile(), cfg.History.Keep)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), leagueID, limit)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}

			if jsonOut {
				return writeJSON(cmd, runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No scans recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.CreatedAt.Local().Format("2006-01-02 15:04"),
					run.LeagueName,
					run.DraftID,
					strconv.Itoa(run.QualifyingPicks),
					strconv.Itoa(run.Remaining),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "League", "Draft", "Picks", "Remaining"},
				rows, 4, 5,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&leagueID, "league", "", "Only show scans for this league ID")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of scans to show")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit history as JSON")
	return cmd
}
