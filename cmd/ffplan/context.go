package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/kostyll/HudlFfmpeg/internal/command"
	"github.com/kostyll/HudlFfmpeg/internal/config"
	"github.com/kostyll/HudlFfmpeg/internal/deps"
	"github.com/kostyll/HudlFfmpeg/internal/logging"
	"github.com/kostyll/HudlFfmpeg/internal/media/ffprobe"
	"github.com/kostyll/HudlFfmpeg/internal/planstore"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
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
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) prober() (*ffprobe.Prober, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	binary := deps.ResolveFFprobe(cfg.FFprobeBinary(), cfg.FFmpegBinary())
	return ffprobe.NewProber(binary, cfg.ProbeTimeout()), nil
}

func (c *commandContext) newPipeline() (*command.Pipeline, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	prober, err := c.prober()
	if err != nil {
		return nil, err
	}
	return command.NewPipeline(
		command.WithLogger(logger),
		command.WithProber(prober),
	), nil
}

func (c *commandContext) withStore(fn func(*planstore.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := planstore.Open(cfg)
	if err != nil {
		return fmt.Errorf("open plan store: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
