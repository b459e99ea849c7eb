// Package logger sets up zerolog console logging with the level taken from LOG_LEVEL
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

const LevelEnv = "LOG_LEVEL"

// New возвращает логгер, пишущий в w. Уровень берется из LOG_LEVEL, иначе defaultLevel.
func New(w io.Writer, defaultLevel zerolog.Level, lookupEnv func(string) (string, bool)) zerolog.Logger {
	level := defaultLevel
	if lookupEnv != nil {
		if raw, ok := lookupEnv(LevelEnv); ok {
			if parsed, err := zerolog.ParseLevel(raw); err == nil && raw != "" {
				level = parsed
			}
		}
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
