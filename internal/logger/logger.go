package logger

import (
	"coin-purchase/internal/config"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. An unknown level falls back to info.
func New(cfg config.LogConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Pretty {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
		return zerolog.New(output).Level(level).With().Timestamp().Caller().Str("service", "coin-purchase").Logger()
	}

	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", "coin-purchase").Logger()
}
