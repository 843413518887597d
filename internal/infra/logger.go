package infra

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger aliases zerolog.Logger so packages can accept a logger without
// importing the third-party module themselves.
type Logger = zerolog.Logger

// NewLogger writes JSON lines tagged with the service name to out. Development
// switches to the console writer. levelName overrides the environment default
// (debug in development, info elsewhere); an unknown name keeps the default.
func NewLogger(appEnv, levelName string, out io.Writer) Logger {
	dev := appEnv == "development"

	level := zerolog.InfoLevel
	if dev {
		level = zerolog.DebugLevel
	}
	if name := strings.TrimSpace(levelName); name != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(name)); err == nil {
			level = parsed
		}
	}

	if dev {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "imagestudio").
		Logger()
}
