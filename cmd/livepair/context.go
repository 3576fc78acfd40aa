package main

import (
	"log/slog"
	"strings"
	"sync"

	"livepair/internal/config"
	"livepair/internal/imagemeta"
	"livepair/internal/livephoto"
	"livepair/internal/logging"
	"livepair/internal/videometa"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{configFlag: configFlag, verboseFlag: verboseFlag}
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
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

// newLogger builds the run logger; --verbose forces debug level.
func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if c.verbose() {
		level = "debug"
	}
	return logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
}

// newToolkit wires the production drivers into a stamping toolkit.
func (c *commandContext) newToolkit(cfg *config.Config, logger *slog.Logger) *livephoto.Toolkit {
	return livephoto.New(
		imagemeta.NewExifTool(cfg.ExifToolBinary(), logging.WithComponent(logger, "imagemeta")),
		videometa.NewFFmpeg(cfg.FFmpegBinary(), logging.WithComponent(logger, "videometa")),
		videometa.NewFFprobe(cfg.FFprobeBinary()),
		logging.WithComponent(logger, "livephoto"),
	)
}
