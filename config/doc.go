// Package config loads the process logger settings from environment variables
// and an optional logging.yaml file. It defines the environment name, log level,
// log directory, target index and host name used to build the process logger.
package config
