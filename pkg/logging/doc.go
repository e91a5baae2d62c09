// Package logging provides structured logging configuration for scenectl.
//
// This package wraps log/slog so the CLI, the scene builder and the control
// client log the same way. It supports configurable levels and formats.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("step finished", "step", "create", "target", "Ground")
//
// # Output Formats
//
//   - Text: human-readable, the default for terminals
//   - JSON: one object per line, for piping into other tools
//
// Components accept a *slog.Logger in their constructor or through an
// option. When none is given they fall back to Nop.
package logging
