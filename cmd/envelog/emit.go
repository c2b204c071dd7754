package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/angeloszaimis/envelope-logger/config"
	"github.com/angeloszaimis/envelope-logger/pkg/logger"
	"github.com/angeloszaimis/envelope-logger/pkg/taxonomy"
)

type emitOptions struct {
	level        string
	message      string
	fields       []string
	category     string
	eventType    string
	component    string
	subComponent string
	application  string
	eventName    string
	validate     bool
}

func newEmitCommand() *cobra.Command {
	opts := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Write one event to the console and the log file",
		Long: `Write one event to the console and the log file.

Settings come from NODE_ENV, LOG_LEVEL, LOG_DIR, LOG_INDEX and LOG_HOSTNAME,
or from logging.yaml in the working directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEmit(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.level, "level", "info", "event level (debug, info, warn, error)")
	flags.StringVarP(&opts.message, "message", "m", "", "event message")
	flags.StringArrayVarP(&opts.fields, "field", "f", nil, "metadata field as key=value; JSON values are decoded")
	flags.StringVar(&opts.category, "category", "", "event category (Infrastructure, Application, Business)")
	flags.StringVar(&opts.eventType, "type", "", "business or application event type")
	flags.StringVar(&opts.component, "component", "", "emitting component")
	flags.StringVar(&opts.subComponent, "sub-component", "", "emitting sub component")
	flags.StringVar(&opts.application, "app", "", "application name")
	flags.StringVar(&opts.eventName, "name", "", "event name")
	flags.BoolVar(&opts.validate, "validate", false, "reject incomplete taxonomy tags")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func runEmit(cmd *cobra.Command, opts *emitOptions) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.level)); err != nil {
		return fmt.Errorf("level: %w", err)
	}

	data, err := parseFields(opts.fields)
	if err != nil {
		return err
	}

	entry, tagged, err := opts.entry()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.Init(cfg, logger.WithConsole(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	defer log.Close()
	defer log.HandlePanic()

	args := []any{data}
	if tagged {
		args = append(args, entry)
	}
	log.Log(cmd.Context(), level, opts.message, args...)

	return nil
}

func (o *emitOptions) entry() (taxonomy.LogEntry, bool, error) {
	entry := taxonomy.LogEntry{
		EventCategory:   taxonomy.EventCategory(o.category),
		ApplicationName: o.application,
		Component:       o.component,
		SubComponent:    o.subComponent,
		EventName:       o.eventName,
	}
	tagged := o.category != "" || o.eventType != "" || o.component != "" ||
		o.application != "" || o.eventName != ""

	if o.eventType != "" {
		t, ok := taxonomy.ParseEventType(o.eventType)
		if !ok {
			return entry, tagged, fmt.Errorf("type: unknown event type %q", o.eventType)
		}
		entry.EventType = t
	}

	if o.validate {
		if err := entry.Validate(); err != nil {
			return entry, tagged, err
		}
	}

	return entry, tagged, nil
}

func parseFields(fields []string) (map[string]any, error) {
	data := make(map[string]any, len(fields))
	for _, field := range fields {
		key, raw, ok := strings.Cut(field, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("field %q: expected key=value", field)
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		data[key] = value
	}
	return data, nil
}
