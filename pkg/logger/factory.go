package logger

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/angeloszaimis/envelope-logger/internal/metrics"
)

var (
	ErrEnvironmentNotSet = errors.New("environment not passed or set")
	ErrIndexNotSet       = errors.New("index not passed or set")
	ErrLevelNotSet       = errors.New("log level not passed or set")
)

// Factory builds loggers from shared defaults. Defaults changed with the Set
// methods apply to loggers built afterwards; existing loggers keep theirs.
type Factory struct {
	mutex sync.RWMutex
	base  options
}

// NewFactory returns a factory whose defaults are seeded from opts.
func NewFactory(opts ...Option) *Factory {
	base := defaultOptions()
	for _, opt := range opts {
		opt(&base)
	}
	return &Factory{base: base}
}

func (f *Factory) SetIndex(index string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.base.settings.Index = index
}

func (f *Factory) SetEnvironment(environment string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.base.settings.Environment = environment
}

func (f *Factory) SetLevel(level string) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.base.settings.Level = level
}

func (f *Factory) Defaults() Settings {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.base.settings
}

// ConsoleLogger builds a logger that writes envelopes to the console.
func (f *Factory) ConsoleLogger(opts ...Option) (*Logger, error) {
	o, err := f.resolve(opts)
	if err != nil {
		return nil, err
	}

	stats := metrics.NewMetrics()
	handler := newEnvelopeHandler(o.console, parseLevel(o.settings.Level),
		o.settings.Environment, o.settings.Index, o.now, SinkConsole, stats)

	return newLogger(handler, stats, o.exit), nil
}

// FileLogger builds a logger with a human-readable console sink and an
// envelope file sink under dir.
func (f *Factory) FileLogger(dir string, opts ...Option) (*Logger, error) {
	o, err := f.resolve(opts)
	if err != nil {
		return nil, err
	}

	level := parseLevel(o.settings.Level)

	// Compares the level value, not the environment. Passing the environment
	// name "development" as the level is the only way to get debug here.
	consoleLevel := slog.LevelInfo
	if o.settings.Level == "development" {
		consoleLevel = slog.LevelDebug
	}

	stats := metrics.NewMetrics()
	file := newRotatingFile(dir, o.hostname)
	fileHandler := newEnvelopeHandler(file, level, o.settings.Environment, o.settings.Index, o.now, SinkFile, stats)
	fileHandler.maxLine = int(MaxFileSize)
	handler := newFanoutHandler(
		newConsoleHandler(o.console, maxLevel(level, consoleLevel), o.colorize(), stats),
		fileHandler,
	)

	return newLogger(handler, stats, o.exit, file), nil
}

func (f *Factory) resolve(opts []Option) (options, error) {
	f.mutex.RLock()
	o := f.base
	f.mutex.RUnlock()

	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.settings.Environment == "":
		return o, ErrEnvironmentNotSet
	case o.settings.Index == "":
		return o, ErrIndexNotSet
	case o.settings.Level == "":
		return o, ErrLevelNotSet
	}
	return o, nil
}
