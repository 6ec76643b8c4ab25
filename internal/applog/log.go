// Package applog configures the process-wide structured logger.
package applog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/powerman/structlog"
)

var setup sync.Once

// Init sets up structlog.DefaultLogger. level is one of debug, info, warn, err.
// Keys are configured on the first call only; later calls just change the level.
func Init(level string) {
	setup.Do(func() {
		structlog.DefaultLogger.
			SetPrefixKeys(
				structlog.KeyApp, structlog.KeyPID, structlog.KeyLevel, structlog.KeyUnit, structlog.KeyTime,
			).
			SetDefaultKeyvals(
				structlog.KeyApp, filepath.Base(os.Args[0]),
				structlog.KeySource, structlog.Auto,
			).
			SetSuffixKeys(structlog.KeySource).
			SetKeysFormat(map[string]string{
				structlog.KeyTime:   " %[2]s",
				structlog.KeySource: " %6[2]s",
				structlog.KeyUnit:   " %6[2]s",
			})
	})
	structlog.DefaultLogger.SetLogLevel(structlog.ParseLevel(levelName(level)))
}

// levelName normalizes a flag value to a name structlog.ParseLevel accepts,
// defaulting to info
func levelName(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "dbg":
		return "debug"
	case "warn", "wrn", "warning":
		return "warn"
	case "err", "error":
		return "err"
	default:
		return "info"
	}
}
