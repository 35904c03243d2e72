// Package logging configures the process-wide leveled logger.
package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the shared logger instance. Commands log through it; timestamps
// are suppressed so output stays stable across runs.
var Logger = newLogger()

func newLogger() *log.Logger {
	l := log.New(os.Stderr)
	l.SetTimeFormat("")
	l.SetLevel(log.InfoLevel)
	return l
}

// Configure applies the requested level. Unknown names fall back to info.
func Configure(level string) {
	switch strings.ToLower(level) {
	case "debug":
		Logger.SetLevel(log.DebugLevel)
	case "warn":
		Logger.SetLevel(log.WarnLevel)
	case "error":
		Logger.SetLevel(log.ErrorLevel)
	default:
		Logger.SetLevel(log.InfoLevel)
	}
}
