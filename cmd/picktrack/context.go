package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"picktrack/internal/config"
	"picktrack/internal/logging"
	"picktrack/internal/playercache"
	"picktrack/internal/sleeper"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		level = strings.TrimSpace(*c.logLevelFlag)
	}
	return logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
}

func (c *commandContext) sleeperClient(cfg *config.Config) (*sleeper.Client, error) {
	return sleeper.New(
		cfg.Sleeper.BaseURL,
		cfg.Sleeper.UserAgent,
		sleeper.WithTimeout(time.Duration(cfg.Sleeper.RequestTimeout)*time.Second),
	)
}

func (c *commandContext) playerStore(cfg *config.Config, client *sleeper.Client, logger *slog.Logger) *playercache.Store {
	var fetch playercache.FetchFunc
	if client != nil {
		fetch = client.Players
	}
	return playercache.NewStore(
		cfg.CacheFile(),
		time.Duration(cfg.Cache.TTLHours)*time.Hour,
		fetch,
		logger,
	)
}
