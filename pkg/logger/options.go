package logger

import (
	"io"
	"os"
	"time"
)

// Settings are the three values every logger needs: the environment name and
// target index stamped into each envelope header, and the minimum level.
type Settings struct {
	Environment string
	Index       string
	Level       string
}

type Option func(*options)

type options struct {
	settings Settings
	console  io.Writer
	color    *bool
	hostname string
	now      func() time.Time
	exit     func(int)
}

func defaultOptions() options {
	return options{
		console:  os.Stdout,
		hostname: defaultHostname(),
		now:      time.Now,
		exit:     os.Exit,
	}
}

func (o options) colorize() bool {
	if o.color != nil {
		return *o.color
	}
	return isTerminal(o.console)
}

func WithEnvironment(environment string) Option {
	return func(o *options) { o.settings.Environment = environment }
}

func WithIndex(index string) Option {
	return func(o *options) { o.settings.Index = index }
}

func WithLevel(level string) Option {
	return func(o *options) { o.settings.Level = level }
}

// WithConsole redirects console output, stdout by default.
func WithConsole(w io.Writer) Option {
	return func(o *options) { o.console = w }
}

// WithColor forces console colorization on or off. By default colors are
// used only when the console is a terminal.
func WithColor(enabled bool) Option {
	return func(o *options) { o.color = &enabled }
}

// WithHostname overrides the host name used in the file sink name.
func WithHostname(hostname string) Option {
	return func(o *options) { o.hostname = hostname }
}

// WithClock sets the time source for eventHeader.eventDateTime.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithExitFunc replaces os.Exit in HandlePanic.
func WithExitFunc(exit func(int)) Option {
	return func(o *options) { o.exit = exit }
}

func defaultHostname() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "localhost"
	}
	return host
}
