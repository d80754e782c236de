package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"picktrack/internal/history"
	"picktrack/internal/logging"
	"picktrack/internal/report"
	"picktrack/internal/scanlog"
	"picktrack/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var nameOverride string
	var teams int
	var positions []string
	var jsonOut bool
	var noLog bool

	cmd := &cobra.Command{
		Use:   "scan <league_id> [draft_id]",
		Short: "Scan a draft for position picks and append the report to the league log",
		Long: `Scan a Sleeper draft for picks at the target positions (kickers by
default), render them against the rookie pick slotting scheme, and append the
report to the per-league log file.

The league ID is the numeric ID in your Sleeper league URL. When the draft ID
is omitted, the league's most recent draft is used.

Examples:
  picktrack scan 992093674233335808
  picktrack scan 992093674233335808 998877665544332211
  picktrack scan 992093674233335808 --teams 10 --positions K,P`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := ctx.logger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			client, err := ctx.sleeperClient(cfg)
			if err != nil {
				return fmt.Errorf("create sleeper client: %w", err)
			}

			var hist *history.Store
			if cfg.History.Enabled {
				hist, err = history.Open(cfg.HistoryFile(), cfg.History.Keep)
				if err != nil {
					logger.Warn("open history store failed", logging.Error(err))
					hist = nil
				} else {
					defer hist.Close()
				}
			}

			var logFile *scanlog.Writer
			if !noLog {
				logFile = scanlog.NewWriter(cfg.Paths.LogDir)
			}

			opts := report.Options{
				TeamsPerRound:         cfg.Report.TeamsPerRound,
				TotalPicks:            cfg.Report.TotalPicks,
				LowRemainingThreshold: cfg.Report.LowRemainingThreshold,
				Positions:             cfg.Report.Positions,
				RoundMarker:           cfg.Report.RoundMarker,
				Season:                cfg.Report.Season,
			}

			s := scanner.New(
				client,
				ctx.playerStore(cfg, client, logger),
				logFile,
				hist,
				logger,
				opts,
			)

			req := scanner.Request{
				LeagueID:      args[0],
				NameOverride:  nameOverride,
				TeamsPerRound: teams,
				Positions:     positions,
			}
			if len(args) > 1 {
				req.DraftID = args[1]
			}

			result, runErr := s.Run(cmd.Context(), req)
			if result == nil {
				return runErr
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, result.ReportText)
				if result.LogPath != "" && runErr == nil {
					fmt.Fprintln(out)
					fmt.Fprintln(out, styled(successStyle, "Output appended to "+result.LogPath))
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&nameOverride, "name", "n", "Sleeper League", "Display name used when the league has none")
	cmd.Flags().IntVarP(&teams, "teams", "t", 0, "Teams per round (default from config)")
	cmd.Flags().StringSliceVar(&positions, "positions", nil, "Target position codes (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the scan result as JSON")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "Skip appending to the league log file")
	return cmd
}
