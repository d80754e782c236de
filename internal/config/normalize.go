package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSleeper()
	c.normalizeCache()
	c.normalizeReport()
	c.normalizeHistory()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSleeper() {
	c.Sleeper.BaseURL = strings.TrimRight(strings.TrimSpace(c.Sleeper.BaseURL), "/")
	if c.Sleeper.BaseURL == "" {
		c.Sleeper.BaseURL = defaultSleeperBaseURL
	}
	if c.Sleeper.RequestTimeout <= 0 {
		c.Sleeper.RequestTimeout = defaultRequestTimeout
	}
	c.Sleeper.UserAgent = strings.TrimSpace(c.Sleeper.UserAgent)
	if c.Sleeper.UserAgent == "" {
		c.Sleeper.UserAgent = defaultUserAgent
	}
}

func (c *Config) normalizeCache() {
	c.Cache.File = strings.TrimSpace(c.Cache.File)
	if c.Cache.File == "" {
		c.Cache.File = defaultCacheFile
	}
	if c.Cache.TTLHours <= 0 {
		c.Cache.TTLHours = defaultCacheTTLHours
	}
}

func (c *Config) normalizeReport() {
	positions := make([]string, 0, len(c.Report.Positions))
	for _, pos := range c.Report.Positions {
		pos = strings.ToUpper(strings.TrimSpace(pos))
		if pos != "" {
			positions = append(positions, pos)
		}
	}
	c.Report.Positions = positions
	if c.Report.Season == "" {
		c.Report.Season = defaultSeason
	}
}

func (c *Config) normalizeHistory() {
	c.History.File = strings.TrimSpace(c.History.File)
	if c.History.File == "" {
		c.History.File = defaultHistoryFile
	}
	if c.History.Keep <= 0 {
		c.History.Keep = defaultHistoryKeep
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
