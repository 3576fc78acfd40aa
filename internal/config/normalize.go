package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeTools(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

// normalizeTools trims binary overrides and honors environment overrides,
// handy for pointing a single run at a different tool build.
func (c *Config) normalizeTools() error {
	c.Tools.ExifTool = strings.TrimSpace(c.Tools.ExifTool)
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	if value, ok := os.LookupEnv("LIVEPAIR_EXIFTOOL"); ok {
		c.Tools.ExifTool = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv("LIVEPAIR_FFMPEG"); ok {
		c.Tools.FFmpeg = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv("LIVEPAIR_FFPROBE"); ok {
		c.Tools.FFprobe = strings.TrimSpace(value)
	}
	return nil
}

func (c *Config) normalizeOutput() error {
	c.Output.BundleDir = strings.TrimSpace(c.Output.BundleDir)
	if c.Output.BundleDir == "" {
		return nil
	}
	expanded, err := expandPath(c.Output.BundleDir)
	if err != nil {
		return fmt.Errorf("output.bundle_dir: %w", err)
	}
	c.Output.BundleDir = expanded
	return nil
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
