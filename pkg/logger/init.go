package logger

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/angeloszaimis/envelope-logger/config"
	"github.com/angeloszaimis/envelope-logger/internal/metrics"
)

// Init builds the process logger from cfg: a colorized console sink, debug in
// development and info otherwise, and a rotating envelope file sink at
// <cfg.Dir>/application_<cfg.Hostname>.log. Both sinks are also bounded by
// cfg.Level. The caller owns the logger and should Close it on shutdown.
func Init(cfg *config.Config, opts ...Option) (*Logger, error) {
	if cfg == nil {
		return nil, errors.New("logger config: nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("logger config: %w", err)
	}

	o := defaultOptions()
	o.settings = Settings{
		Environment: cfg.Environment,
		Index:       cfg.Index,
		Level:       cfg.Level,
	}
	o.hostname = cfg.Hostname
	for _, opt := range opts {
		opt(&o)
	}

	level := parseLevel(o.settings.Level)
	consoleLevel := slog.LevelInfo
	if o.settings.Environment == config.EnvDevelopment {
		consoleLevel = slog.LevelDebug
	}

	stats := metrics.NewMetrics()
	file := newRotatingFile(cfg.Dir, o.hostname)
	fileHandler := newEnvelopeHandler(file, level, o.settings.Environment, o.settings.Index, o.now, SinkFile, stats)
	fileHandler.maxLine = int(MaxFileSize)
	handler := newFanoutHandler(
		newConsoleHandler(o.console, maxLevel(level, consoleLevel), o.colorize(), stats),
		fileHandler,
	)

	return newLogger(handler, stats, o.exit, file), nil
}
