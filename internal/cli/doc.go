// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// builds the cobra command tree, binds flags, an optional config file and
// CHEMLITE_* environment variables through viper, and translates them into
// the application's internal configuration.
package cli
