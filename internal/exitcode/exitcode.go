// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, unknown task id).
	UserError = 1

	// ConfigError indicates an unreadable or invalid configuration,
	// or a session that could not be created from it.
	ConfigError = 2
)
