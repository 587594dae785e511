package mrcp

import "log/slog"

var defLogger *slog.Logger

// SetDefaultLogger sets the logger used within the mrcp package.
// Must be called before any usage of the package if the default is unwanted.
func SetDefaultLogger(l *slog.Logger) {
	defLogger = l
}

// DefaultLogger returns the logger currently in use by the package.
func DefaultLogger() *slog.Logger {
	if defLogger != nil {
		return defLogger
	}
	return slog.Default()
}
