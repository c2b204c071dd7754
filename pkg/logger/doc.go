// Package logger emits log events wrapped in a fixed JSON envelope.
//
// Every record written to an envelope sink has exactly two top-level fields:
//
//	{"eventHeader":{"eventDateTime":"...","level":"info","environment":"production","target":"MY_INDEX"},
//	 "eventData":{"message":"offer accepted","orderId":42}}
//
// The header carries the format time, level, environment and target index; the
// caller's metadata is flattened into eventData next to the message and never
// leaks into the header.
//
// Two construction paths exist. Init builds the process logger from a
// config.Config: a colorized console sink plus a rotating file sink at
// <dir>/application_<hostname>.log. A Factory builds any number of
// differently-configured loggers from shared defaults that can be set once and
// overridden per call:
//
//	f := logger.NewFactory()
//	f.SetEnvironment("production")
//	f.SetIndex("MY_INDEX")
//	f.SetLevel("info")
//
//	log, err := f.ConsoleLogger()
//	if err != nil {
//		return err
//	}
//	log.Info("offer accepted", map[string]any{"orderId": 42})
//
// Loggers are built on log/slog; Slog exposes the underlying *slog.Logger for
// code that already speaks slog. Close flushes and closes the file sink.
package logger
