package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"vidmatch/internal/assets"
	"vidmatch/internal/config"
	"vidmatch/internal/latency"
	"vidmatch/internal/logging"
	"vidmatch/internal/matching"
	"vidmatch/internal/services"
	"vidmatch/internal/videoid"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "", err)
			return
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
		}
		if format := flagValue(c.logFormatFlag); format != "" {
			cfg.Logging.Format = strings.ToLower(format)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "flags", "", err)
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// logger builds a session-scoped logger writing to the command's stderr.
func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, w)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "logging", "init", "", err)
	}
	return logging.WithSession(logger, uuid.NewString()), nil
}

// catalog returns the configured catalog file, or the built-in sample records
// when no file is configured.
func (c *commandContext) catalog(logger *slog.Logger) (*assets.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	catalog := assets.DefaultCatalog()
	source := "builtin"
	if cfg.Catalog.Path != "" {
		catalog, err = assets.LoadCatalog(cfg.Catalog.Path)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "catalog", "load", cfg.Catalog.Path, err)
		}
		source = cfg.Catalog.Path
	}

	logger = logging.NewComponentLogger(logger, "catalog")
	logger.Debug("catalog ready",
		logging.String("source", source),
		logging.Int("records", catalog.Len()))
	for _, rec := range assets.Unmatchable(catalog, videoid.Default) {
		logging.WarnWithContext(logger, "catalog record has no recognizable video id", "catalog_unmatchable_record",
			logging.String(logging.FieldAssetID, rec.AssetID),
			logging.String("source_url", rec.SourceURL),
			logging.String(logging.FieldErrorHint, "check the record's source_url"),
			logging.String(logging.FieldImpact, "record can never be matched"),
		)
	}
	return catalog, nil
}

// newService wires the matching service for a command. noDelay forces the
// simulated latency off regardless of configuration.
func (c *commandContext) newService(cmd *cobra.Command, noDelay bool, opts ...matching.Option) (*matching.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	catalog, err := c.catalog(logger)
	if err != nil {
		return nil, err
	}

	var delayer latency.Delayer = latency.None{}
	if !noDelay && cfg.Latency.Enabled {
		minDelay, maxDelay := cfg.LatencyRange()
		delayer = latency.NewUniform(minDelay, maxDelay, nil)
	}

	opts = append([]matching.Option{matching.WithDelayer(delayer)}, opts...)
	return matching.NewService(assets.NewMatcher(catalog, videoid.Default), logger, opts...), nil
}

func flagValue(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
