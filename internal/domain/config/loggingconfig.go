// Package config provides domain value objects for daemon and transport configuration.
package config

// LoggingConfig defines global logging defaults.
// It specifies base directory and default settings inherited by all writers.
type LoggingConfig struct {
	// Defaults specifies default logging settings.
	Defaults LogDefaults
	// BaseDir specifies the base directory for all log files.
	BaseDir string
	// Daemon specifies daemon-level event logging configuration.
	Daemon DaemonLogging
}

// DefaultLoggingConfig returns a LoggingConfig with sensible defaults.
//
// Returns:
//   - LoggingConfig: a configuration with base directory and default settings.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		BaseDir: "/var/log/meshbus",
		Defaults: LogDefaults{
			TimestampFormat: "iso8601",
			Rotation:        DefaultRotationConfig(),
		},
		Daemon: DefaultDaemonLogging(),
	}
}
