package config

const (
	defaultDataDir               = "~/.local/share/picktrack"
	defaultLogDir                = "~/.local/share/picktrack/logs"
	defaultSleeperBaseURL        = "https://api.sleeper.app/v1"
	defaultRequestTimeout        = 20
	defaultUserAgent             = "picktrack/dev"
	defaultCacheFile             = "nfl_players.json"
	defaultCacheTTLHours         = 24
	defaultTeamsPerRound         = 12
	defaultTotalPicks            = 48
	defaultLowRemainingThreshold = 5
	defaultSeason                = "2026"
	defaultHistoryFile           = "history.db"
	defaultHistoryKeep           = 500
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Sleeper: Sleeper{
			BaseURL:        defaultSleeperBaseURL,
			RequestTimeout: defaultRequestTimeout,
			UserAgent:      defaultUserAgent,
		},
		Cache: Cache{
			File:     defaultCacheFile,
			TTLHours: defaultCacheTTLHours,
		},
		Report: Report{
			Positions:             []string{"K"},
			TeamsPerRound:         defaultTeamsPerRound,
			TotalPicks:            defaultTotalPicks,
			LowRemainingThreshold: defaultLowRemainingThreshold,
			RoundMarker:           true,
			Season:                defaultSeason,
		},
		History: History{
			Enabled: true,
			File:    defaultHistoryFile,
			Keep:    defaultHistoryKeep,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
