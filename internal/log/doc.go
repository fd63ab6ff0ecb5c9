// Package log provides logging for pagebridge, built on top of the
// standard slog package.
//
// This package extends slog to provide:
//   - Truncation of long string values, so rendered documents logged at
//     debug level stay readable
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Usage
//
//	// Create a logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("page rendered",
//	    "page", "home",
//	    "output", output, // shortened to MaxAttrLen bytes
//	)
package log
