package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return ensurePositiveMap(map[string]int{
		"sleeper.request_timeout": c.Sleeper.RequestTimeout,
		"cache.ttl_hours":         c.Cache.TTLHours,
		"history.keep":            c.History.Keep,
	})
}

func (c *Config) validateReport() error {
	if len(c.Report.Positions) == 0 {
		return errors.New("report.positions must name at least one position code")
	}
	if c.Report.TeamsPerRound <= 0 {
		return errors.New("report.teams_per_round must be positive")
	}
	if c.Report.TotalPicks <= 0 {
		return errors.New("report.total_picks must be positive")
	}
	if c.Report.LowRemainingThreshold < 0 {
		return errors.New("report.low_remaining_threshold must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for name, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}
