// Package logger builds configured slog.Logger instances and provides
// attribute helpers for consistent structured logging across the module.
//
//	log := logger.New(logger.WithDevelopment("toastkit"))
//	log.Info("queue ready", logger.Component("toast"))
//
// The defaults are production-safe (JSON output at info level); use
// WithDevelopment for human-readable debug output.
package logger
